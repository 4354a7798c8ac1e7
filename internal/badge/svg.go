package badge

import "fmt"

// hexForColour maps severity colour names to the hex values shields.io
// renders them with.
var hexForColour = map[Colour]string{
	BrightGreen: "#4c1",
	Yellow:      "#dfb317",
	Orange:      "#fe7d37",
	Red:         "#e05d44",
}

// RenderSVG generates a shields-compatible flat badge locally, for runs
// where the badge service is unreachable or undesirable.
func RenderSVG(label, message string, colour Colour, style Style) string {
	hex, ok := hexForColour[colour]
	if !ok {
		hex = "#9f9f9f"
	}

	labelWidth := float64(len(label))*6.5 + 10
	messageWidth := float64(len(message))*7.5 + 10
	totalWidth := labelWidth + messageWidth

	rx := 3
	if style == StyleFlatSquare {
		rx = 0
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="20">
  <linearGradient id="s" x2="0" y2="100%%">
    <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
    <stop offset="1" stop-opacity=".1"/>
  </linearGradient>
  <clipPath id="r">
    <rect width="%.0f" height="20" rx="%d" fill="#fff"/>
  </clipPath>
  <g clip-path="url(#r)">
    <path fill="#555" d="M0 0h%.0fv20H0z"/>
    <path fill="%s" d="M%.0f 0h%.0fv20H%.0fz"/>
    <path fill="url(#s)" d="M0 0h%.0fv20H0z"/>
  </g>
  <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
    <text x="%.1f" y="15" fill="#010101" fill-opacity=".3">%s</text>
    <text x="%.1f" y="14">%s</text>
    <text x="%.1f" y="15" fill="#010101" fill-opacity=".3">%s</text>
    <text x="%.1f" y="14">%s</text>
  </g>
</svg>`,
		totalWidth,
		totalWidth,
		rx,
		labelWidth,
		hex,
		labelWidth, messageWidth, labelWidth,
		totalWidth,
		labelWidth/2, label,
		labelWidth/2, label,
		labelWidth+messageWidth/2, message,
		labelWidth+messageWidth/2, message,
	)
}
