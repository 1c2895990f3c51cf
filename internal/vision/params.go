package vision

import "image"

// CascadeParams controls a multi-scale cascade search.
type CascadeParams struct {
	// ScaleFactor is the step between successive search scales.
	ScaleFactor float64

	// MinNeighbors is the number of corroborating neighbor detections a
	// candidate needs to survive.
	MinNeighbors int

	// MinSize is the smallest candidate accepted, in pixels.
	MinSize image.Point
}

// DefaultFaceCascadeParams returns the frontal-face search parameters the
// measurements are calibrated against.
func DefaultFaceCascadeParams() CascadeParams {
	return CascadeParams{
		ScaleFactor:  1.3,
		MinNeighbors: 5,
		MinSize:      image.Pt(100, 100),
	}
}

// DefaultEyeCascadeParams returns the eye search parameters used inside an
// accepted face region.
func DefaultEyeCascadeParams() CascadeParams {
	return CascadeParams{
		ScaleFactor:  1.2,
		MinNeighbors: 5,
		MinSize:      image.Pt(30, 30),
	}
}

// HoughParams controls a circular Hough search over a median-blurred eye
// region.
type HoughParams struct {
	// BlurKernel is the median blur kernel size applied before the search.
	BlurKernel int

	// DP is the inverse accumulator resolution ratio.
	DP float64

	// EdgeThreshold is the upper Canny edge threshold (param1).
	EdgeThreshold float64

	// AccumulatorThreshold is the circle-center vote threshold (param2).
	AccumulatorThreshold float64

	// MinRadius and MaxRadius bound the search, in pixels. MaxRadius <= 0
	// means half the eye region height.
	MinRadius int
	MaxRadius int
}

// DefaultIrisHoughParams tunes the search for the larger, lower-contrast
// iris boundary: radii from 5px up to half the region height.
func DefaultIrisHoughParams() HoughParams {
	return HoughParams{
		BlurKernel:           5,
		DP:                   1,
		EdgeThreshold:        50,
		AccumulatorThreshold: 30,
		MinRadius:            5,
		MaxRadius:            0,
	}
}

// DefaultPupilHoughParams tunes the search for the smaller, higher-contrast
// pupil: radii from 3 to 20px.
func DefaultPupilHoughParams() HoughParams {
	return HoughParams{
		BlurKernel:           5,
		DP:                   1,
		EdgeThreshold:        50,
		AccumulatorThreshold: 30,
		MinRadius:            3,
		MaxRadius:            20,
	}
}
