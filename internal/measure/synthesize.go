package measure

import "math"

// Fraction of an eye box's width used to cap its height when estimating the
// vertical eye dimension. Detected eye boxes often include the eyebrow; the
// cap keeps it out of the estimate.
const bSizeHeightCap = 0.6

// Synthesize combines the calibrated ratio with the eye-box geometry into
// the three output measurements.
//
// The bridge width can come out negative when the two eye boxes overlap
// horizontally. It is reported as-is: a negative value is a valid output
// signaling detector disagreement, not something to clamp.
func Synthesize(eyes EyePair, cal Calibration, method string) Measurement {
	bridgePx := eyes.Right.Min.X - (eyes.Left.Min.X + eyes.Left.Dx())

	leftHeight := min(eyes.Left.Dy(), int(bSizeHeightCap*float64(eyes.Left.Dx())))
	rightHeight := min(eyes.Right.Dy(), int(bSizeHeightCap*float64(eyes.Right.Dx())))
	bSizePx := max(leftHeight, rightHeight)

	return Measurement{
		EyeWidthMM:    round2(cal.EyeWidthPx * cal.Ratio),
		BridgeWidthMM: round2(float64(bridgePx) * cal.Ratio),
		BSizeMM:       round2(float64(bSizePx) * cal.Ratio),
		Method:        method,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
