package badge

// Colour is a shields.io colour name for the admitted-proof severity tier.
type Colour string

const (
	Red         Colour = "red"
	Orange      Colour = "orange"
	Yellow      Colour = "yellow"
	BrightGreen Colour = "brightgreen"
)

// PickColour maps the admitted/theorem ratio to a severity colour. The
// branches are evaluated in order with ordinary float arithmetic, so a
// repository with admitted proofs but no theorem markers lands on red.
func PickColour(admitted, theorems int) Colour {
	a := float64(admitted)
	t := float64(theorems)
	switch {
	case a > 0.2*t:
		return Red
	case a > 0.1*t:
		return Orange
	case admitted == 0:
		return BrightGreen
	default:
		return Yellow
	}
}
