package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSVG(t *testing.T) {
	svg := RenderSVG("admitted proofs", "0", BrightGreen, StyleFlat)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "admitted proofs")
	assert.Contains(t, svg, ">0<")
	assert.Contains(t, svg, "#4c1")
	assert.Contains(t, svg, `rx="3"`)
}

func TestRenderSVG_FlatSquare(t *testing.T) {
	svg := RenderSVG("admitted proofs", "12", Red, StyleFlatSquare)

	assert.Contains(t, svg, `rx="0"`)
	assert.Contains(t, svg, "#e05d44")
	assert.Contains(t, svg, ">12<")
}

func TestRenderSVG_UnknownColourFallsBackToGrey(t *testing.T) {
	svg := RenderSVG("admitted proofs", "1", Colour("mauve"), StyleFlat)

	assert.Contains(t, svg, "#9f9f9f")
}
