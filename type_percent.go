package perfchart

import "fmt"

// Percent is a percentage in the base-100 convention: 0 means no change.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// growth converts a percentage into a growth factor (10% is 1.1).
func growth(p float64) float64 { return 1 + p/100 }

// percent converts a growth factor back into a percentage.
func percent(g float64) float64 { return (g - 1) * 100 }
