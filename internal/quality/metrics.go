// Package quality scores the submitted frame before measurement. The scores
// are diagnostics only: they are reported as warnings alongside a successful
// measurement and never gate the pipeline.
package quality

import (
	"image"
	"image/draw"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Metrics holds the capture quality scores for one frame.
type Metrics struct {
	// LaplacianVar is the variance of the Laplacian response; low values
	// indicate a blurry capture.
	LaplacianVar float64

	// Brightness is the mean grayscale value in [0, 255].
	Brightness float64

	Width  int
	Height int
}

// Calculator computes capture quality metrics. It is stateless apart from a
// slice pool and safe for concurrent use.
type Calculator struct {
	slicePool sync.Pool
}

// NewCalculator creates a metrics calculator.
func NewCalculator() *Calculator {
	return &Calculator{
		slicePool: sync.Pool{
			New: func() interface{} {
				return make([]float64, 0, 1024)
			},
		},
	}
}

// Calculate converts the frame to grayscale and computes all metrics.
func (c *Calculator) Calculate(img image.Image) Metrics {
	bounds := img.Bounds()

	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	return Metrics{
		LaplacianVar: c.laplacianVariance(gray),
		Brightness:   c.brightness(gray),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}
}

// laplacianVariance applies the kernel [0 1 0; 1 -4 1; 0 1 0] and returns
// the variance of the responses.
func (c *Calculator) laplacianVariance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return 0
	}

	data := c.slicePool.Get().([]float64)
	defer c.slicePool.Put(data[:0])

	if cap(data) < (width-2)*(height-2) {
		data = make([]float64, 0, (width-2)*(height-2))
	}

	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			top := float64(gray.GrayAt(x, y-1).Y)
			bottom := float64(gray.GrayAt(x, y+1).Y)
			left := float64(gray.GrayAt(x-1, y).Y)
			right := float64(gray.GrayAt(x+1, y).Y)

			data = append(data, -4*center+top+bottom+left+right)
		}
	}

	if len(data) == 0 {
		return 0
	}
	return stat.Variance(data, nil)
}

// brightness averages the grayscale values, splitting large frames into
// horizontal strips processed in parallel.
func (c *Calculator) brightness(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	if width*height < 100000 {
		return c.brightnessSequential(gray)
	}

	numWorkers := runtime.NumCPU()
	if height < numWorkers {
		numWorkers = height
	}
	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	results := make(chan float64, numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		startY := bounds.Min.Y + i*rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > bounds.Max.Y {
			endY = bounds.Max.Y
		}
		go func(startY, endY int) {
			defer wg.Done()

			var total float64
			for y := startY; y < endY; y++ {
				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					total += float64(gray.GrayAt(x, y).Y)
				}
			}
			results <- total
		}(startY, endY)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var total float64
	for partial := range results {
		total += partial
	}
	return total / float64(width*height)
}

func (c *Calculator) brightnessSequential(gray *image.Gray) float64 {
	bounds := gray.Bounds()

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += float64(gray.GrayAt(x, y).Y)
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
