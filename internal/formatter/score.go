package formatter

import (
	"fmt"

	"github.com/fatih/color"
)

// Score color bands. Lower-is-better metrics invert the comparison
// before formatting.
const (
	scoreGood = 0.7
	scoreWarn = 0.5
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// Score renders a higher-is-better score in [0, 1], colored by band.
func Score(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	switch {
	case v >= scoreGood:
		return green(s)
	case v >= scoreWarn:
		return yellow(s)
	default:
		return red(s)
	}
}

// Load renders a lower-is-better load score in [0, 1], colored by band.
func Load(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	switch {
	case v <= 1-scoreGood:
		return green(s)
	case v <= 1-scoreWarn:
		return yellow(s)
	default:
		return red(s)
	}
}

// Delta renders a percentage change where negative is an improvement.
func Delta(pct float64) string {
	s := fmt.Sprintf("%+.1f%%", pct)
	switch {
	case pct < 0:
		return green(s)
	case pct > 0:
		return red(s)
	default:
		return s
	}
}

// Gain renders a percentage change where positive is an improvement.
func Gain(pct float64) string {
	s := fmt.Sprintf("%+.1f%%", pct)
	switch {
	case pct > 0:
		return green(s)
	case pct < 0:
		return red(s)
	default:
		return s
	}
}
