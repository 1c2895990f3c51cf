package measure

import "image"

// Frame is a decoded image handed to the pipeline. It is read-only for the
// duration of one measurement; implementations own the underlying pixel data.
type Frame interface {
	// Bounds returns the pixel rectangle of the full frame.
	Bounds() image.Rectangle

	// Image exposes the frame as a standard library image for diagnostics.
	Image() (image.Image, error)
}

// FaceDetector proposes candidate face regions in a frame, in the detector's
// native discovery order.
type FaceDetector interface {
	DetectFaces(frame Frame) ([]image.Rectangle, error)
}

// EyeDetector proposes eye regions inside a face region. Returned rectangles
// are relative to the face region.
type EyeDetector interface {
	DetectEyes(frame Frame, face image.Rectangle) ([]image.Rectangle, error)
}

// IrisLocator fits a circle to the iris boundary inside one eye region.
// The span is in eye-region coordinates. A nil span means no circle was
// found; callers must not treat absence as zero.
type IrisLocator interface {
	LocateIris(frame Frame, face, eye image.Rectangle) (*IrisSpan, error)
}

// PupilLocator fits a circle to the pupil inside one eye region and returns
// its center in eye-region coordinates, or nil when no circle was found.
type PupilLocator interface {
	LocatePupil(frame Frame, face, eye image.Rectangle) (*image.Point, error)
}
