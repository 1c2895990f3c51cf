package measure

import "image"

// Measurement is the terminal output of the pipeline: three physical lengths
// in millimeters, each rounded to two decimal places.
type Measurement struct {
	EyeWidthMM    float64 `json:"eye_width_mm"`
	BridgeWidthMM float64 `json:"bridge_width_mm"`
	BSizeMM       float64 `json:"b_size_mm"`

	// Method records which calibration path produced the values.
	Method string `json:"method"`
}

// IrisSpan is the horizontal extent of a fitted iris circle, in the
// coordinate space of the eye region it was detected in. The vertical extent
// of the circle is deliberately discarded.
type IrisSpan struct {
	Left  int
	Right int
}

// SubFeatures collects the per-eye circular feature results. Nil fields mean
// the corresponding search found no circle.
type SubFeatures struct {
	LeftIris   *IrisSpan
	RightIris  *IrisSpan
	LeftPupil  *image.Point
	RightPupil *image.Point
}

// Complete reports whether every sub-feature required for precise
// calibration is present.
func (f SubFeatures) Complete() bool {
	return f.LeftIris != nil && f.RightIris != nil && f.LeftPupil != nil && f.RightPupil != nil
}

// EyePair holds the two selected eye boxes in face-region coordinates,
// ordered left to right by x.
type EyePair struct {
	Left  image.Rectangle
	Right image.Rectangle
}
