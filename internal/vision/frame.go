// Package vision implements the pipeline's detector interfaces on top of
// OpenCV via gocv: Haar cascade classifiers for face and eye regions and
// circular Hough searches for iris and pupil sub-features. All trained
// models are loaded once at startup and shared read-only across requests.
package vision

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// ErrUndecodableImage is returned when the submitted bytes do not decode to
// an image.
var ErrUndecodableImage = errors.New("image data could not be decoded")

// errUnsupportedFrame guards the detectors against frames that were not
// produced by this package's decoder.
var errUnsupportedFrame = errors.New("frame was not produced by the vision decoder")

// Frame owns the decoded pixel data for one measurement request: the color
// mat as decoded and a grayscale conversion the detectors search in. The
// pipeline never mutates it; regions handed to detectors are borrowed views.
type Frame struct {
	color gocv.Mat
	gray  gocv.Mat
}

// DecodeFrame decodes encoded image bytes (JPEG, PNG, ...) into a Frame.
// The caller owns the frame and must Close it.
func DecodeFrame(data []byte) (*Frame, error) {
	color, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, ErrUndecodableImage
	}
	if color.Empty() {
		color.Close()
		return nil, ErrUndecodableImage
	}

	gray := gocv.NewMat()
	gocv.CvtColor(color, &gray, gocv.ColorBGRToGray)

	return &Frame{color: color, gray: gray}, nil
}

// Bounds returns the pixel rectangle of the frame.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.color.Cols(), f.color.Rows())
}

// Image converts the frame to a standard library image for diagnostics.
func (f *Frame) Image() (image.Image, error) {
	return f.color.ToImage()
}

// Close releases the underlying mats. The frame must not be used afterwards.
func (f *Frame) Close() error {
	if err := f.color.Close(); err != nil {
		f.gray.Close()
		return err
	}
	return f.gray.Close()
}

// asVisionFrame unwraps the concrete frame behind the pipeline interface.
func asVisionFrame(frame interface{ Bounds() image.Rectangle }) (*Frame, error) {
	f, ok := frame.(*Frame)
	if !ok {
		return nil, errUnsupportedFrame
	}
	return f, nil
}
