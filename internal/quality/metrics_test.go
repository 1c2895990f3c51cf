package quality

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func createUniformImage(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: value})
		}
	}
	return img
}

func createCheckerboard(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestNewCalculator(t *testing.T) {
	if NewCalculator() == nil {
		t.Error("Expected non-nil calculator")
	}
}

func TestCalculate_UniformImage(t *testing.T) {
	calc := NewCalculator()

	m := calc.Calculate(createUniformImage(100, 80, 128))

	if m.Width != 100 || m.Height != 80 {
		t.Errorf("Expected 100x80, got %dx%d", m.Width, m.Height)
	}
	// A uniform image has no edges at all.
	if m.LaplacianVar != 0 {
		t.Errorf("Expected zero Laplacian variance for uniform image, got %f", m.LaplacianVar)
	}
	if math.Abs(m.Brightness-128) > 0.5 {
		t.Errorf("Expected brightness ~128, got %f", m.Brightness)
	}
}

func TestCalculate_HighContrastImage(t *testing.T) {
	calc := NewCalculator()

	uniform := calc.Calculate(createUniformImage(100, 100, 128))
	sharp := calc.Calculate(createCheckerboard(100, 100))

	if sharp.LaplacianVar <= uniform.LaplacianVar {
		t.Errorf("Expected checkerboard variance (%f) to exceed uniform variance (%f)",
			sharp.LaplacianVar, uniform.LaplacianVar)
	}
}

func TestCalculate_BrightnessExtremes(t *testing.T) {
	calc := NewCalculator()

	dark := calc.Calculate(createUniformImage(50, 50, 10))
	if math.Abs(dark.Brightness-10) > 0.5 {
		t.Errorf("Expected brightness ~10 for dark image, got %f", dark.Brightness)
	}

	bright := calc.Calculate(createUniformImage(50, 50, 245))
	if math.Abs(bright.Brightness-245) > 0.5 {
		t.Errorf("Expected brightness ~245 for bright image, got %f", bright.Brightness)
	}
}

func TestCalculate_LargeImageParallelPath(t *testing.T) {
	calc := NewCalculator()

	// 400x300 crosses the parallel-processing threshold.
	m := calc.Calculate(createUniformImage(400, 300, 200))
	if math.Abs(m.Brightness-200) > 0.5 {
		t.Errorf("Expected brightness ~200 on parallel path, got %f", m.Brightness)
	}
}

func TestCalculate_TinyImage(t *testing.T) {
	calc := NewCalculator()

	// Too small for the Laplacian window; must not panic.
	m := calc.Calculate(createUniformImage(2, 2, 100))
	if m.LaplacianVar != 0 {
		t.Errorf("Expected zero variance for 2x2 image, got %f", m.LaplacianVar)
	}
}
