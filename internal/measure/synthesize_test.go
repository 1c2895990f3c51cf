package measure

import (
	"image"
	"testing"
)

func TestSynthesize_ApproximateGeometry(t *testing.T) {
	eyes := EyePair{
		Left:  image.Rect(40, 50, 70, 70),   // w=30, h=20
		Right: image.Rect(130, 50, 160, 70), // w=30, h=20
	}
	cal := Calibration{Ratio: 0.7, EyeWidthPx: 30}

	m := Synthesize(eyes, cal, "approximate")

	if m.EyeWidthMM != 21.0 {
		t.Errorf("Expected eye width 21.00mm, got %f", m.EyeWidthMM)
	}
	// Bridge: 130 - (40+30) = 60px at 0.7mm/px.
	if m.BridgeWidthMM != 42.0 {
		t.Errorf("Expected bridge width 42.00mm, got %f", m.BridgeWidthMM)
	}
	// Heights capped at int(0.6*30)=18px, both eyes equal.
	if m.BSizeMM != 12.6 {
		t.Errorf("Expected b size 12.60mm, got %f", m.BSizeMM)
	}
	if m.Method != "approximate" {
		t.Errorf("Expected method approximate, got %s", m.Method)
	}
}

func TestSynthesize_NegativeBridgeNotClamped(t *testing.T) {
	// Overlapping eye boxes: right edge of left eye past left edge of right.
	eyes := EyePair{
		Left:  image.Rect(40, 50, 100, 80),
		Right: image.Rect(90, 50, 150, 80),
	}
	cal := Calibration{Ratio: 1, EyeWidthPx: 60}

	m := Synthesize(eyes, cal, "approximate")

	if m.BridgeWidthMM != -10.0 {
		t.Errorf("Expected negative bridge width -10.00, got %f", m.BridgeWidthMM)
	}
}

func TestSynthesize_BSizeHeightCap(t *testing.T) {
	// Tall boxes: heights exceed 60% of width, so the cap applies.
	tall := EyePair{
		Left:  image.Rect(40, 20, 70, 80),   // w=30, h=60
		Right: image.Rect(130, 20, 160, 80), // w=30, h=60
	}
	m := Synthesize(tall, Calibration{Ratio: 1, EyeWidthPx: 30}, "approximate")
	if m.BSizeMM != 18.0 {
		t.Errorf("Expected capped b size 18.00, got %f", m.BSizeMM)
	}

	// Short boxes: heights below the cap pass through unchanged.
	short := EyePair{
		Left:  image.Rect(40, 50, 70, 60),   // h=10
		Right: image.Rect(130, 50, 160, 65), // h=15
	}
	m = Synthesize(short, Calibration{Ratio: 1, EyeWidthPx: 30}, "approximate")
	if m.BSizeMM != 15.0 {
		t.Errorf("Expected max of uncapped heights 15.00, got %f", m.BSizeMM)
	}
}

func TestSynthesize_DegenerateRatioLeavesPixelsUnconverted(t *testing.T) {
	eyes := EyePair{
		Left:  image.Rect(40, 50, 70, 70),
		Right: image.Rect(130, 50, 160, 70),
	}
	m := Synthesize(eyes, Calibration{Ratio: 1, EyeWidthPx: 30}, "approximate")

	// With ratio 1 the outputs equal the raw pixel geometry.
	if m.EyeWidthMM != 30.0 {
		t.Errorf("Expected unconverted eye width 30.00, got %f", m.EyeWidthMM)
	}
	if m.BridgeWidthMM != 60.0 {
		t.Errorf("Expected unconverted bridge width 60.00, got %f", m.BridgeWidthMM)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{21.0, 21.0},
		{0.699999 * 30, 21.0},
		{12.5999999, 12.6},
		{-10.004, -10.0},
		{33.3333333, 33.33},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.expected {
			t.Errorf("round2(%f) = %f, expected %f", tt.in, got, tt.expected)
		}
	}
}
