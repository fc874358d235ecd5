// SPDX-License-Identifier: MIT
package layout

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Pattern tables keyed by item count. Within each list, patterns are
// ordered by increasing asymmetry so the chaos value can index into
// them directly.
var patterns = map[int][][]int{
	2: {{1, 1}, {2, 1}, {1, 2}},
	3: {{1, 1, 1}, {2, 1, 1}, {1, 2, 1}, {2, 1, 2}},
	4: {{1, 1, 1, 1}, {2, 1, 1, 2}, {2, 2, 1, 1}, {3, 1, 1, 3}},
	5: {{1, 1, 1, 1, 1}, {2, 1, 2, 1, 2}, {2, 2, 1, 2, 2}, {3, 1, 2, 1, 3}},
	6: {{1, 1, 1, 1, 1, 1}, {2, 1, 1, 1, 1, 2}, {2, 2, 1, 1, 2, 2}, {3, 2, 1, 1, 2, 3}},
	7: {{1, 1, 1, 1, 1, 1, 1}, {2, 1, 1, 2, 1, 1, 2}, {3, 1, 2, 1, 2, 1, 3}},
	8: {{1, 1, 1, 1, 1, 1, 1, 1}, {2, 1, 1, 2, 2, 1, 1, 2}, {3, 1, 2, 2, 2, 2, 1, 3}},
}

// Broken patterns carry deliberate zero-span slots; a 0 renders as an
// invisible grid cell, pushing neighbors into asymmetric positions.
var brokenPatterns = map[int][][]int{
	3: {{2, 0, 1}, {1, 0, 2}},
	4: {{2, 0, 1, 1}, {1, 2, 0, 1}, {3, 0, 2, 1}},
	5: {{2, 0, 1, 1, 2}, {1, 0, 2, 0, 1}, {3, 0, 1, 2, 0}},
	6: {{2, 0, 1, 1, 0, 2}, {3, 0, 2, 1, 0, 3}, {2, 0, 3, 1, 0, 2}},
}

// SelectPattern picks a span pattern for count items at the given chaos
// level. Above the broken threshold it draws from the broken table when
// one exists for the count; otherwise it indexes the nearest count's
// pattern list by chaos and pads or truncates to fit.
func SelectPattern(count int, chaos float64) []int {
	if count <= 0 {
		return nil
	}

	if chaos > ChaosBroken {
		if broken, ok := brokenPatterns[count]; ok {
			idx := int((chaos - ChaosBroken) / (1 - ChaosBroken) * float64(len(broken)-1))
			return fitPattern(broken[clampIndex(idx, len(broken))], count)
		}
	}

	key, ok := nearestKey(count)
	if !ok {
		return uniformPattern(count)
	}
	list := patterns[key]
	idx := int(chaos * float64(len(list)-1))
	return fitPattern(list[clampIndex(idx, len(list))], count)
}

// nearestKey finds the pattern-table key closest to count, scanning
// keys in ascending order so the smaller key wins a distance tie.
func nearestKey(count int) (int, bool) {
	keys := make([]int, 0, len(patterns))
	for k := range patterns {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return 0, false
	}
	sort.Ints(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if abs(k-count) < abs(best-count) {
			best = k
		}
	}
	return best, true
}

// fitPattern copies the pattern and adjusts its length to count:
// truncate when longer, pad with the neutral span 1 when shorter.
// Padding never disturbs the existing asymmetry.
func fitPattern(p []int, count int) []int {
	out := make([]int, 0, count)
	if len(p) >= count {
		out = append(out, p[:count]...)
		return out
	}
	out = append(out, p...)
	for len(out) < count {
		out = append(out, 1)
	}
	return out
}

func uniformPattern(count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out
}

// ColumnCount returns the grid column count implied by a pattern: the
// maximum non-zero span.
func ColumnCount(pattern []int) int {
	max := 1
	for _, span := range pattern {
		if span > max {
			max = span
		}
	}
	return max
}

// mobileBreakpoint is the viewport width below which displacement is
// suppressed entirely.
const mobileBreakpoint = 768

// DisplacementCSS emits per-element offsets that overlap grid items
// into a broken composition. Below the displacement threshold the
// output is empty. Offsets grow linearly with chaos and alternate sign
// between odd and even elements.
func DisplacementCSS(selector string, count int, chaos float64) string {
	if chaos <= ChaosDisplacement || count <= 0 {
		return ""
	}
	intensity := (chaos - ChaosDisplacement) / (1 - ChaosDisplacement)
	y := math.Round(intensity * 24)
	x := math.Round(intensity * 10)

	var b strings.Builder
	fmt.Fprintf(&b, "@media (min-width: %dpx) {\n", mobileBreakpoint)
	for i := 1; i <= count; i++ {
		sy, sx := y, x
		if i%2 == 0 {
			sy, sx = -y, -x
		}
		fmt.Fprintf(&b, "%s:nth-child(%d) { transform: translate(%.0fpx, %.0fpx); }\n", selector, i, sx, sy)
	}
	b.WriteString("}\n")
	return b.String()
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
