package validation

import (
	"fmt"

	"go-face-measure/internal/quality"
)

// CaptureThresholds defines configurable thresholds for capture quality
// warnings.
type CaptureThresholds struct {
	// Sharpness threshold
	MinLaplacianVariance float64

	// Brightness thresholds
	MinBrightness float64
	MaxBrightness float64

	// Resolution thresholds
	MinWidth  int
	MinHeight int
}

// DefaultCaptureThresholds returns the default capture thresholds. They are
// tuned for handheld face photos, looser than document-scanning thresholds.
func DefaultCaptureThresholds() CaptureThresholds {
	return CaptureThresholds{
		MinLaplacianVariance: 100.0,
		MinBrightness:        80.0,
		MaxBrightness:        220.0,
		MinWidth:             320,
		MinHeight:            240,
	}
}

// CaptureValidator turns frame quality metrics into human-readable warnings.
// Warnings are advisory: a poor capture still goes through the measurement
// pipeline, which fails on its own terms if the face cannot be found.
type CaptureValidator struct {
	thresholds CaptureThresholds
}

// NewCaptureValidator creates a capture validator with default thresholds.
func NewCaptureValidator() *CaptureValidator {
	return &CaptureValidator{
		thresholds: DefaultCaptureThresholds(),
	}
}

// NewCaptureValidatorWithThresholds creates a capture validator with custom
// thresholds.
func NewCaptureValidatorWithThresholds(thresholds CaptureThresholds) *CaptureValidator {
	return &CaptureValidator{
		thresholds: thresholds,
	}
}

// Validate returns a warning per threshold the frame violates, empty for a
// clean capture.
func (cv *CaptureValidator) Validate(m quality.Metrics) []string {
	var warnings []string

	if m.LaplacianVar < cv.thresholds.MinLaplacianVariance {
		warnings = append(warnings, fmt.Sprintf(
			"image appears blurry (laplacian variance %.1f below %.1f)",
			m.LaplacianVar, cv.thresholds.MinLaplacianVariance))
	}

	if m.Brightness < cv.thresholds.MinBrightness {
		warnings = append(warnings, fmt.Sprintf(
			"image is too dark (brightness %.1f below %.1f)",
			m.Brightness, cv.thresholds.MinBrightness))
	} else if m.Brightness > cv.thresholds.MaxBrightness {
		warnings = append(warnings, fmt.Sprintf(
			"image is too bright (brightness %.1f above %.1f)",
			m.Brightness, cv.thresholds.MaxBrightness))
	}

	if m.Width < cv.thresholds.MinWidth || m.Height < cv.thresholds.MinHeight {
		warnings = append(warnings, fmt.Sprintf(
			"image resolution %dx%d is below the recommended %dx%d",
			m.Width, m.Height, cv.thresholds.MinWidth, cv.thresholds.MinHeight))
	}

	return warnings
}
