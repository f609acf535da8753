package formatter

import (
	"testing"

	"github.com/fatih/color"
)

func TestScoreBands(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		v    float64
		want string
	}{
		{0.85, "0.85"},
		{0.5, "0.50"},
		{0.12, "0.12"},
	}
	for _, tt := range tests {
		if got := Score(tt.v); got != tt.want {
			t.Errorf("Score(%f) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestLoadShowsOriginalValue(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Load(0.72); got != "0.72" {
		t.Errorf("Load(0.72) = %q, want the raw value", got)
	}
}

func TestDeltaSign(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Delta(-3.25); got != "-3.2%" && got != "-3.3%" {
		t.Errorf("Delta(-3.25) = %q", got)
	}
	if got := Delta(4.0); got != "+4.0%" {
		t.Errorf("Delta(4.0) = %q, want +4.0%%", got)
	}
	if got := Delta(0); got != "+0.0%" {
		t.Errorf("Delta(0) = %q, want +0.0%%", got)
	}
}
