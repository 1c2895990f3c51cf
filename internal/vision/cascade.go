package vision

import (
	"fmt"
	"image"
	"path/filepath"

	"gocv.io/x/gocv"

	"go-face-measure/internal/measure"
)

// Directories searched for cascade model files when the configured path does
// not resolve, covering the usual OpenCV install locations.
var cascadeSearchDirs = []string{
	"/usr/local/share/opencv4/haarcascades",
	"/usr/share/opencv4/haarcascades",
	"/opt/homebrew/share/opencv4/haarcascades",
}

func loadCascade(file string) (gocv.CascadeClassifier, error) {
	classifier := gocv.NewCascadeClassifier()
	if classifier.Load(file) {
		return classifier, nil
	}

	base := filepath.Base(file)
	for _, dir := range cascadeSearchDirs {
		if classifier.Load(filepath.Join(dir, base)) {
			return classifier, nil
		}
	}

	classifier.Close()
	return gocv.CascadeClassifier{}, fmt.Errorf("failed to load cascade classifier from %s or fallback paths", file)
}

// FaceCascade detects candidate face regions with a trained frontal-face
// Haar cascade. The classifier is loaded once and never mutated afterwards,
// so it is safe to share across concurrent requests.
type FaceCascade struct {
	classifier gocv.CascadeClassifier
	params     CascadeParams
}

// NewFaceCascade loads the face model from file, falling back to the
// standard OpenCV install locations.
func NewFaceCascade(file string, params CascadeParams) (*FaceCascade, error) {
	classifier, err := loadCascade(file)
	if err != nil {
		return nil, err
	}
	return &FaceCascade{classifier: classifier, params: params}, nil
}

// DetectFaces runs the multi-scale search over the grayscale frame and
// returns candidates in the classifier's native discovery order.
func (d *FaceCascade) DetectFaces(frame measure.Frame) ([]image.Rectangle, error) {
	f, err := asVisionFrame(frame)
	if err != nil {
		return nil, err
	}

	faces := d.classifier.DetectMultiScaleWithParams(
		f.gray,
		d.params.ScaleFactor,
		d.params.MinNeighbors,
		0,
		d.params.MinSize,
		image.Point{},
	)
	return faces, nil
}

// Close releases the classifier.
func (d *FaceCascade) Close() error {
	return d.classifier.Close()
}

// EyeCascade detects eye regions inside a face region with a trained eye
// Haar cascade. Like the face cascade it is loaded once and shared.
type EyeCascade struct {
	classifier gocv.CascadeClassifier
	params     CascadeParams
}

// NewEyeCascade loads the eye model from file, falling back to the standard
// OpenCV install locations.
func NewEyeCascade(file string, params CascadeParams) (*EyeCascade, error) {
	classifier, err := loadCascade(file)
	if err != nil {
		return nil, err
	}
	return &EyeCascade{classifier: classifier, params: params}, nil
}

// DetectEyes searches the grayscale face region. Returned rectangles are in
// face-region coordinates.
func (d *EyeCascade) DetectEyes(frame measure.Frame, face image.Rectangle) ([]image.Rectangle, error) {
	f, err := asVisionFrame(frame)
	if err != nil {
		return nil, err
	}

	faceROI := f.gray.Region(face)
	defer faceROI.Close()

	eyes := d.classifier.DetectMultiScaleWithParams(
		faceROI,
		d.params.ScaleFactor,
		d.params.MinNeighbors,
		0,
		d.params.MinSize,
		image.Point{},
	)
	return eyes, nil
}

// Close releases the classifier.
func (d *EyeCascade) Close() error {
	return d.classifier.Close()
}
