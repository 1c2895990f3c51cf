package measure

// KnownInterpupillaryMM is the average adult interpupillary distance. It is
// the single physical calibration constant of the system.
const KnownInterpupillaryMM = 63.0

// Options configures a Pipeline. Detector-side tuning (cascade scale steps,
// Hough thresholds) lives with the detector implementations; these options
// cover the pipeline's own arithmetic and scheduling.
type Options struct {
	// InterpupillaryMM is the physical distance assumed between the two
	// pupil centers, in millimeters.
	InterpupillaryMM float64

	// UseWorkerPool dispatches the four sub-feature searches (iris and pupil
	// for each eye) to a shared worker pool instead of running them inline.
	UseWorkerPool bool

	// MaxWorkers bounds the worker pool size. Zero means one worker per CPU.
	MaxWorkers int
}

// DefaultOptions returns the standard pipeline options: the 63mm calibration
// constant and pooled sub-feature searches.
func DefaultOptions() Options {
	return Options{
		InterpupillaryMM: KnownInterpupillaryMM,
		UseWorkerPool:    true,
		MaxWorkers:       0,
	}
}

// WithInterpupillary overrides the calibration constant.
func (o Options) WithInterpupillary(mm float64) Options {
	o.InterpupillaryMM = mm
	return o
}

// WithoutWorkerPool forces the sub-feature searches to run sequentially.
func (o Options) WithoutWorkerPool() Options {
	o.UseWorkerPool = false
	return o
}
