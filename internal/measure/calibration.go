package measure

// Calibration converts the selected pixel geometry into a millimeter ratio.
// The ratio is valid only for the frame that produced it: interpupillary
// pixel distance changes with camera distance on every shot, so ratios are
// never cached or reused.
type Calibration struct {
	// Ratio is millimeters per pixel.
	Ratio float64

	// EyeWidthPx is the pixel quantity the synthesizer converts into
	// eye_width_mm: the iris span on the precise path, the mean eye-box
	// width on the approximate path.
	EyeWidthPx float64
}

// CalibrationStrategy is one of the two mutually exclusive measurement
// paths. Exactly one strategy executes per request; they are never blended.
type CalibrationStrategy interface {
	Calibrate() Calibration
	Name() string
}

// SelectStrategy picks the calibration path from data availability: precise
// when every sub-feature was found for both eyes, approximate otherwise.
func SelectStrategy(eyes EyePair, features SubFeatures, interpupillaryMM float64) CalibrationStrategy {
	if features.Complete() {
		return &preciseStrategy{eyes: eyes, features: features, interpupillaryMM: interpupillaryMM}
	}
	return &approximateStrategy{eyes: eyes, interpupillaryMM: interpupillaryMM}
}

// preciseStrategy calibrates on the detected pupil centers and measures the
// eye span between the outer iris boundaries.
type preciseStrategy struct {
	eyes             EyePair
	features         SubFeatures
	interpupillaryMM float64
}

func (s *preciseStrategy) Name() string { return "precise" }

func (s *preciseStrategy) Calibrate() Calibration {
	// Translate eye-region coordinates into face-region coordinates by
	// adding each eye box's x offset.
	leftIrisGlobal := s.eyes.Left.Min.X + s.features.LeftIris.Left
	rightIrisGlobal := s.eyes.Right.Min.X + s.features.RightIris.Right
	spanPx := float64(rightIrisGlobal - leftIrisGlobal)

	leftPupilGlobal := s.eyes.Left.Min.X + s.features.LeftPupil.X
	rightPupilGlobal := s.eyes.Right.Min.X + s.features.RightPupil.X
	distancePx := float64(rightPupilGlobal - leftPupilGlobal)

	return Calibration{
		Ratio:      ratioFor(distancePx, s.interpupillaryMM),
		EyeWidthPx: spanPx,
	}
}

// approximateStrategy falls back to raw eye-box geometry when any circular
// sub-feature is missing.
type approximateStrategy struct {
	eyes             EyePair
	interpupillaryMM float64
}

func (s *approximateStrategy) Name() string { return "approximate" }

func (s *approximateStrategy) Calibrate() Calibration {
	avgWidthPx := float64(s.eyes.Left.Dx()+s.eyes.Right.Dx()) / 2

	leftCenter := float64(s.eyes.Left.Min.X) + float64(s.eyes.Left.Dx())/2
	rightCenter := float64(s.eyes.Right.Min.X) + float64(s.eyes.Right.Dx())/2
	distancePx := rightCenter - leftCenter

	return Calibration{
		Ratio:      ratioFor(distancePx, s.interpupillaryMM),
		EyeWidthPx: avgWidthPx,
	}
}

// ratioFor clamps zero or negative pixel distances to a ratio of exactly 1.
// The clamp trades silently unconverted output for availability; it is an
// intentional branch, not incidental arithmetic, and is covered by tests.
func ratioFor(distancePx, interpupillaryMM float64) float64 {
	if distancePx > 0 {
		return interpupillaryMM / distancePx
	}
	return 1
}
