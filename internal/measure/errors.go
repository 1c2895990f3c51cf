package measure

// FailureKind tags the fixed set of terminal pipeline failures. No failure
// is retried inside the pipeline; all are reported upward.
type FailureKind string

const (
	FailureNoFace           FailureKind = "no_face_detected"
	FailureNoCenteredFace   FailureKind = "no_centered_face"
	FailureInsufficientEyes FailureKind = "insufficient_eyes_detected"
)

// PipelineError is a terminal measurement failure. Once raised, no partial
// Measurement is produced.
type PipelineError struct {
	Kind   FailureKind
	Reason string
}

func (e *PipelineError) Error() string {
	return e.Reason
}

var (
	// ErrNoFaceDetected means the face detector produced no candidates.
	ErrNoFaceDetected = &PipelineError{Kind: FailureNoFace, Reason: "No face detected"}

	// ErrNoCenteredFace means faces were detected but none was well-framed.
	ErrNoCenteredFace = &PipelineError{Kind: FailureNoCenteredFace, Reason: "No centered face found"}

	// ErrInsufficientEyes means fewer than two eye regions were found inside
	// the accepted face.
	ErrInsufficientEyes = &PipelineError{Kind: FailureInsufficientEyes, Reason: "Not enough eyes detected"}
)

// IsPipelineError reports whether err is one of the enumerated measurement
// failures, as opposed to an infrastructure error from a detector backend.
func IsPipelineError(err error) bool {
	_, ok := err.(*PipelineError)
	return ok
}
