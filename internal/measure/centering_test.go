package measure

import (
	"image"
	"testing"
)

func TestFaceCentered_AcceptsWellFramedFace(t *testing.T) {
	// 300x300 face centered in a 640x480 frame, height well above 30%.
	face := image.Rect(170, 90, 470, 390)

	if !FaceCentered(face, 640, 480) {
		t.Error("Expected centered face to be accepted")
	}
}

func TestFaceCentered_RejectsOffCenterFace(t *testing.T) {
	// Face pushed to the extreme left edge: center_x = 75, well outside
	// the 320±128 window.
	face := image.Rect(0, 165, 150, 315)

	if FaceCentered(face, 640, 480) {
		t.Error("Expected face at frame edge to be rejected")
	}
}

func TestFaceCentered_RejectsSmallFace(t *testing.T) {
	// Perfectly centered but only 100px tall in a 480px frame (< 30%).
	face := image.Rect(270, 190, 370, 290)

	if FaceCentered(face, 640, 480) {
		t.Error("Expected undersized face to be rejected")
	}
}

func TestFaceCentered_BoundaryIsStrict(t *testing.T) {
	// Frame 100x100: the horizontal window is (30, 70) exclusive and the
	// vertical window is (30, 70) exclusive. Centers exactly on a boundary
	// must be rejected.
	tests := []struct {
		name     string
		face     image.Rectangle
		expected bool
	}{
		{
			name: "center exactly on left tolerance boundary",
			// center_x = 10 + 40/2 = 30
			face:     image.Rect(10, 30, 50, 70),
			expected: false,
		},
		{
			name: "center exactly on right tolerance boundary",
			// center_x = 50 + 40/2 = 70
			face:     image.Rect(50, 30, 90, 70),
			expected: false,
		},
		{
			name: "center one pixel inside the boundary",
			// center_x = 11 + 40/2 = 31
			face:     image.Rect(11, 30, 51, 70),
			expected: true,
		},
		{
			name: "center exactly on top tolerance boundary",
			// center_y = 10 + 40/2 = 30
			face:     image.Rect(30, 10, 70, 50),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FaceCentered(tt.face, 100, 100); got != tt.expected {
				t.Errorf("FaceCentered(%v) = %v, expected %v", tt.face, got, tt.expected)
			}
		})
	}
}

func TestFaceCentered_HeightMustExceedMinimum(t *testing.T) {
	// Exactly 30% of frame height is not enough; the bound is strict.
	face := image.Rect(35, 35, 65, 65) // 30px tall in a 100px frame

	if FaceCentered(face, 100, 100) {
		t.Error("Expected face at exactly 30% frame height to be rejected")
	}

	taller := image.Rect(35, 34, 65, 65) // 31px tall
	if !FaceCentered(taller, 100, 100) {
		t.Error("Expected face above 30% frame height to be accepted")
	}
}

func TestFirstCenteredFace_TakesFirstMatchInDetectionOrder(t *testing.T) {
	offCenter := image.Rect(0, 0, 150, 150)
	centered := image.Rect(170, 90, 470, 390)
	alsoCentered := image.Rect(180, 100, 460, 380)

	face, ok := firstCenteredFace([]image.Rectangle{offCenter, centered, alsoCentered}, 640, 480)
	if !ok {
		t.Fatal("Expected a centered face to be found")
	}
	if face != centered {
		t.Errorf("Expected first accepted candidate %v, got %v", centered, face)
	}
}

func TestFirstCenteredFace_ExhaustedSequence(t *testing.T) {
	faces := []image.Rectangle{
		image.Rect(0, 0, 150, 150),
		image.Rect(490, 330, 640, 480),
	}

	if _, ok := firstCenteredFace(faces, 640, 480); ok {
		t.Error("Expected no candidate to pass centering")
	}
}
