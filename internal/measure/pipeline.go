package measure

import (
	"image"
	"sort"
	"sync"
)

// Pipeline turns one decoded frame into one Measurement or one
// PipelineError, never both and never neither. It holds no mutable state
// across invocations: the detectors wrap models loaded once at startup and
// shared read-only, so concurrent Process calls need no locking.
type Pipeline struct {
	faces  FaceDetector
	eyes   EyeDetector
	irises IrisLocator
	pupils PupilLocator
	opts   Options
	pool   *WorkerPool
}

// NewPipeline wires a measurement pipeline from its detector dependencies.
func NewPipeline(faces FaceDetector, eyes EyeDetector, irises IrisLocator, pupils PupilLocator, opts Options) *Pipeline {
	p := &Pipeline{
		faces:  faces,
		eyes:   eyes,
		irises: irises,
		pupils: pupils,
		opts:   opts,
	}
	if opts.UseWorkerPool {
		p.pool = NewWorkerPool(opts.MaxWorkers)
		p.pool.Start()
	}
	return p
}

// Process runs the full pipeline on one frame. Control flows strictly
// forward; the only loop is the candidate walk in firstCenteredFace. A
// returned error is either a *PipelineError (an enumerated measurement
// failure) or an infrastructure error from a detector backend.
func (p *Pipeline) Process(frame Frame) (Measurement, error) {
	bounds := frame.Bounds()

	faces, err := p.faces.DetectFaces(frame)
	if err != nil {
		return Measurement{}, err
	}
	if len(faces) == 0 {
		return Measurement{}, ErrNoFaceDetected
	}

	face, ok := firstCenteredFace(faces, bounds.Dx(), bounds.Dy())
	if !ok {
		return Measurement{}, ErrNoCenteredFace
	}

	eyes, err := p.selectEyePair(frame, face)
	if err != nil {
		return Measurement{}, err
	}

	features, err := p.locateSubFeatures(frame, face, eyes)
	if err != nil {
		return Measurement{}, err
	}

	strategy := SelectStrategy(eyes, features, p.opts.InterpupillaryMM)
	return Synthesize(eyes, strategy.Calibrate(), strategy.Name()), nil
}

// Close releases the worker pool, if any. The detector models themselves are
// owned by their implementations.
func (p *Pipeline) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// selectEyePair detects eyes inside the face region and keeps the two with
// the smallest x-coordinates as the left/right pair. Detections beyond the
// first two are discarded without validation; the assumption is that the
// true eyes dominate the leftmost two slots.
func (p *Pipeline) selectEyePair(frame Frame, face image.Rectangle) (EyePair, error) {
	boxes, err := p.eyes.DetectEyes(frame, face)
	if err != nil {
		return EyePair{}, err
	}
	if len(boxes) < 2 {
		return EyePair{}, ErrInsufficientEyes
	}

	sort.Slice(boxes, func(i, j int) bool {
		return boxes[i].Min.X < boxes[j].Min.X
	})

	return EyePair{Left: boxes[0], Right: boxes[1]}, nil
}

// locateSubFeatures runs the four circular-feature searches, fanning them
// out to the worker pool when one is configured. Each search independently
// reports absence as nil; a backend error from any of them aborts the
// invocation.
func (p *Pipeline) locateSubFeatures(frame Frame, face image.Rectangle, eyes EyePair) (SubFeatures, error) {
	var features SubFeatures
	errs := make([]error, 4)

	jobs := []func(){
		func() { features.LeftIris, errs[0] = p.irises.LocateIris(frame, face, eyes.Left) },
		func() { features.RightIris, errs[1] = p.irises.LocateIris(frame, face, eyes.Right) },
		func() { features.LeftPupil, errs[2] = p.pupils.LocatePupil(frame, face, eyes.Left) },
		func() { features.RightPupil, errs[3] = p.pupils.LocatePupil(frame, face, eyes.Right) },
	}

	if p.pool != nil {
		// Wait on this invocation's jobs only; the pool is shared with
		// concurrent invocations.
		var wg sync.WaitGroup
		for _, job := range jobs {
			job := job
			wg.Add(1)
			p.pool.Submit(func() {
				defer wg.Done()
				job()
			})
		}
		wg.Wait()
	} else {
		for _, job := range jobs {
			job()
		}
	}

	for _, err := range errs {
		if err != nil {
			return SubFeatures{}, err
		}
	}
	return features, nil
}
