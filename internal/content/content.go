package content

// Service is one offered service line.
type Service struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Price       string `yaml:"price" json:"price"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote  string `yaml:"quote" json:"quote"`
	Author string `yaml:"author" json:"author"`
	Role   string `yaml:"role" json:"role"`
	Rating int    `yaml:"rating" json:"rating"`
}

// TeamMember is one person on the team section.
type TeamMember struct {
	Name  string `yaml:"name" json:"name"`
	Role  string `yaml:"role" json:"role"`
	Bio   string `yaml:"bio" json:"bio"`
	Photo string `yaml:"photo" json:"photo"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Stat is one headline counter ("500+ jobs done").
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// PricingTier is one pricing column.
type PricingTier struct {
	Name     string   `yaml:"name" json:"name"`
	Price    string   `yaml:"price" json:"price"`
	Period   string   `yaml:"period" json:"period"`
	Features []string `yaml:"features" json:"features"`
	Featured bool     `yaml:"featured" json:"featured"`
}

// GalleryImage is one gallery entry.
type GalleryImage struct {
	URL     string `yaml:"url" json:"url"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption" json:"caption"`
}

// Contact is the business's contact block.
type Contact struct {
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
	Address string `yaml:"address" json:"address"`
	City    string `yaml:"city" json:"city"`
	State   string `yaml:"state" json:"state"`
}

// SiteContent is everything the assembler knows about one business.
// Every array is optional; missing sections are skipped, not failed.
type SiteContent struct {
	BusinessName string            `yaml:"business_name" json:"business_name"`
	Industry     string            `yaml:"industry" json:"industry"`
	Tagline      string            `yaml:"tagline" json:"tagline"`
	Headline     string            `yaml:"headline" json:"headline"`
	Description  string            `yaml:"description" json:"description"`
	Services     []Service         `yaml:"services" json:"services"`
	Testimonials []Testimonial     `yaml:"testimonials" json:"testimonials"`
	Team         []TeamMember      `yaml:"team" json:"team"`
	FAQs         []FAQ             `yaml:"faqs" json:"faqs"`
	Stats        []Stat            `yaml:"stats" json:"stats"`
	Pricing      []PricingTier     `yaml:"pricing" json:"pricing"`
	Gallery      []GalleryImage    `yaml:"gallery" json:"gallery"`
	Contact      Contact           `yaml:"contact" json:"contact"`
	Hours        map[string]string `yaml:"hours" json:"hours"`
	TrustBadges  []string          `yaml:"trust_badges" json:"trust_badges"`
}
