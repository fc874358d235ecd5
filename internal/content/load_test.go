package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeTemp(t, "site.yaml", `
business_name: Reyes Plumbing
industry: plumber
tagline: Fast, honest repairs
contact:
  phone: 555-0142
services:
  - name: Drain cleaning
    description: Clogs cleared same day.
hours:
  monday: 8-5
trust_badges:
  - Licensed
  - Insured
`)
	sc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Reyes Plumbing", sc.BusinessName)
	assert.Equal(t, "plumber", sc.Industry)
	assert.Equal(t, "555-0142", sc.Contact.Phone)
	require.Len(t, sc.Services, 1)
	assert.Equal(t, "Drain cleaning", sc.Services[0].Name)
	assert.Equal(t, "8-5", sc.Hours["monday"])
	assert.Equal(t, []string{"Licensed", "Insured"}, sc.TrustBadges)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeTemp(t, "site.json", `{
  "business_name": "Vertex Law",
  "industry": "law-firm",
  "team": [{"name": "A. Ibarra", "role": "Partner"}]
}`)
	sc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Vertex Law", sc.BusinessName)
	require.Len(t, sc.Team, 1)
	assert.Equal(t, "Partner", sc.Team[0].Role)
}

func TestLoadFileMissingBusinessName(t *testing.T) {
	path := writeTemp(t, "site.yaml", "industry: plumber\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business_name")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileSanitizes(t *testing.T) {
	path := writeTemp(t, "site.yaml", `
business_name: "Acme <script>alert(1)</script>"
headline: "<b>Bold</b> claims"
services:
  - name: "Repairs<img src=x onerror=alert(1)>"
    description: plain
`)
	sc, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, sc.BusinessName, "<script>")
	assert.Equal(t, "Bold claims", sc.Headline)
	assert.Equal(t, "Repairs", sc.Services[0].Name)
}

func TestCleanKeepsPlainText(t *testing.T) {
	assert.Equal(t, "Fast, honest repairs", Clean("Fast, honest repairs"))
}
