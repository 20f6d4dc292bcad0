package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Round converts an exact percentage to the whole number shown to learners.
// Halves round away from zero.
func Round(pct float64) int {
	if math.IsNaN(pct) {
		return 0
	}
	return int(math.Round(pct))
}

// RenderProgress renders a progress bar like [████░░░░] 45% for a
// percentage in the range 0-100.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	frac := clampFraction(pct / 100)
	bar := RenderCompactBar(frac, width, false)
	return fmt.Sprintf("[%s] %3d%%", bar, Round(frac*100))
}

// RenderCompactBar renders only the bar glyphs for a fraction in [0, 1].
// Dimmed bars are drawn without the percentage color.
func RenderCompactBar(frac float64, width int, dim bool) string {
	frac = clampFraction(frac)
	if width < 2 {
		width = 2
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
