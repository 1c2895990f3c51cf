package vision

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"go-face-measure/internal/measure"
)

// firstCircle runs the circular Hough search over a median-blurred eye
// region and returns the first circle the transform reports, which carries
// the strongest accumulator vote. A false return means no circle was found;
// that is an absence, not an error.
func firstCircle(f *Frame, face, eye image.Rectangle, params HoughParams) (x, y, r int, found bool) {
	faceROI := f.gray.Region(face)
	defer faceROI.Close()
	eyeROI := faceROI.Region(eye)
	defer eyeROI.Close()

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.MedianBlur(eyeROI, &blurred, params.BlurKernel)

	maxRadius := params.MaxRadius
	if maxRadius <= 0 {
		maxRadius = eye.Dy() / 2
	}
	minDist := float64(eye.Dy()) / 2

	circles := gocv.NewMat()
	defer circles.Close()
	gocv.HoughCirclesWithParams(
		blurred,
		&circles,
		gocv.HoughGradient,
		params.DP,
		minDist,
		params.EdgeThreshold,
		params.AccumulatorThreshold,
		params.MinRadius,
		maxRadius,
	)

	if circles.Empty() || circles.Cols() == 0 {
		return 0, 0, 0, false
	}

	v := circles.GetVecfAt(0, 0)
	if len(v) < 3 {
		return 0, 0, 0, false
	}
	x = int(math.Round(float64(v[0])))
	y = int(math.Round(float64(v[1])))
	r = int(math.Round(float64(v[2])))
	return x, y, r, true
}

// HoughIrisLocator fits the iris outer boundary and keeps only its
// horizontal extent; the vertical extent and exact center are discarded.
type HoughIrisLocator struct {
	params HoughParams
}

// NewHoughIrisLocator creates an iris locator with the given search
// parameters.
func NewHoughIrisLocator(params HoughParams) *HoughIrisLocator {
	return &HoughIrisLocator{params: params}
}

// LocateIris returns the iris span in eye-region coordinates, or nil when no
// circle was found.
func (l *HoughIrisLocator) LocateIris(frame measure.Frame, face, eye image.Rectangle) (*measure.IrisSpan, error) {
	f, err := asVisionFrame(frame)
	if err != nil {
		return nil, err
	}

	x, _, r, found := firstCircle(f, face, eye, l.params)
	if !found {
		return nil, nil
	}
	return &measure.IrisSpan{Left: x - r, Right: x + r}, nil
}

// HoughPupilLocator fits the pupil circle and keeps only its center.
type HoughPupilLocator struct {
	params HoughParams
}

// NewHoughPupilLocator creates a pupil locator with the given search
// parameters.
func NewHoughPupilLocator(params HoughParams) *HoughPupilLocator {
	return &HoughPupilLocator{params: params}
}

// LocatePupil returns the pupil center in eye-region coordinates, or nil
// when no circle was found.
func (l *HoughPupilLocator) LocatePupil(frame measure.Frame, face, eye image.Rectangle) (*image.Point, error) {
	f, err := asVisionFrame(frame)
	if err != nil {
		return nil, err
	}

	x, y, _, found := firstCircle(f, face, eye, l.params)
	if !found {
		return nil, nil
	}
	return &image.Point{X: x, Y: y}, nil
}
