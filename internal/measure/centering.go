package measure

import "image"

// Framing tolerances. A face is accepted when its center sits strictly
// inside a window of ±20% of the frame size around the frame midpoint and
// its height exceeds 30% of the frame height.
const (
	centerToleranceX = 0.2
	centerToleranceY = 0.2
	minFaceHeight    = 0.3
)

// FaceCentered is the centering predicate. It is pure: same inputs, same
// answer, no side effects. Midpoints use integer division and all bounds are
// strict, so a center exactly on a tolerance boundary is rejected.
func FaceCentered(face image.Rectangle, frameWidth, frameHeight int) bool {
	centerX := float64(face.Min.X + face.Dx()/2)
	centerY := float64(face.Min.Y + face.Dy()/2)

	tolX := float64(frameWidth) * centerToleranceX
	tolY := float64(frameHeight) * centerToleranceY
	minHeight := float64(frameHeight) * minFaceHeight

	midX := float64(frameWidth / 2)
	midY := float64(frameHeight / 2)

	return midX-tolX < centerX && centerX < midX+tolX &&
		midY-tolY < centerY && centerY < midY+tolY &&
		float64(face.Dy()) > minHeight
}

// firstCenteredFace walks the candidate sequence in detection order and
// returns the first face that passes the centering predicate. Candidates
// that fail are skipped without being reported.
func firstCenteredFace(faces []image.Rectangle, frameWidth, frameHeight int) (image.Rectangle, bool) {
	for _, face := range faces {
		if FaceCentered(face, frameWidth, frameHeight) {
			return face, true
		}
	}
	return image.Rectangle{}, false
}
