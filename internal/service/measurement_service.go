package service

import (
	"context"
	"math"
	"time"

	apperrors "go-face-measure/internal/errors"
	"go-face-measure/internal/measure"
	"go-face-measure/internal/observer"
	"go-face-measure/internal/quality"
	"go-face-measure/internal/repository"
	"go-face-measure/pkg/models"
	"go-face-measure/pkg/validation"
)

// DecodedFrame is a frame the pipeline can measure and the service must
// release when done.
type DecodedFrame interface {
	measure.Frame
	Close() error
}

// FrameDecoder turns encoded image bytes into a measurable frame.
type FrameDecoder interface {
	Decode(data []byte) (DecodedFrame, error)
}

// FrameDecoderFunc adapts a plain decode function to FrameDecoder.
type FrameDecoderFunc func(data []byte) (DecodedFrame, error)

// Decode implements FrameDecoder.
func (f FrameDecoderFunc) Decode(data []byte) (DecodedFrame, error) {
	return f(data)
}

// FramePipeline is the measurement core as the service sees it.
type FramePipeline interface {
	Process(frame measure.Frame) (measure.Measurement, error)
}

// MeasurementService defines the interface for running one measurement
// request end to end.
type MeasurementService interface {
	Measure(ctx context.Context, req *models.MeasureRequest, requestID string) (*models.MeasureResponse, error)
}

// measurementService implements MeasurementService
type measurementService struct {
	frames    repository.FrameSource
	decoder   FrameDecoder
	pipeline  FramePipeline
	quality   *quality.Calculator
	capture   *validation.CaptureValidator
	events    observer.Subject
	qualityOn bool
}

// NewMeasurementService creates a measurement service. events may be nil;
// quality diagnostics are skipped when qualityChecks is false.
func NewMeasurementService(
	frames repository.FrameSource,
	decoder FrameDecoder,
	pipeline FramePipeline,
	qualityCalc *quality.Calculator,
	capture *validation.CaptureValidator,
	events observer.Subject,
	qualityChecks bool,
) MeasurementService {
	return &measurementService{
		frames:    frames,
		decoder:   decoder,
		pipeline:  pipeline,
		quality:   qualityCalc,
		capture:   capture,
		events:    events,
		qualityOn: qualityChecks,
	}
}

// Measure resolves the request to image bytes, decodes them, and runs the
// measurement pipeline. Every failure is returned as an *apperrors.AppError
// so the transport layer can map it to a status code.
func (s *measurementService) Measure(ctx context.Context, req *models.MeasureRequest, requestID string) (*models.MeasureResponse, error) {
	start := time.Now()
	s.publish(ctx, observer.MeasurementEvent{
		EventType: observer.MeasurementStarted,
		Timestamp: start,
		RequestID: requestID,
	})

	data, err := s.frames.ResolveImage(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, requestID, start, err)
	}

	frame, err := s.decoder.Decode(data)
	if err != nil {
		appErr := apperrors.NewValidationError("Could not decode image.", err)
		s.publish(ctx, observer.MeasurementEvent{
			EventType:    observer.FrameDecodeFailed,
			Timestamp:    time.Now(),
			RequestID:    requestID,
			ErrorMessage: err.Error(),
		})
		return nil, s.fail(ctx, requestID, start, appErr)
	}
	defer frame.Close()

	s.publish(ctx, observer.MeasurementEvent{
		EventType: observer.FrameDecoded,
		Timestamp: time.Now(),
		RequestID: requestID,
		Success:   true,
	})

	warnings := s.captureWarnings(frame)

	m, err := s.pipeline.Process(frame)
	if err != nil {
		if measure.IsPipelineError(err) {
			err = apperrors.NewMeasurementError(err.Error(), err)
		} else {
			err = apperrors.NewInternalError("Measurement pipeline failure", err)
		}
		return nil, s.fail(ctx, requestID, start, err)
	}

	elapsed := time.Since(start)
	s.publish(ctx, observer.MeasurementEvent{
		EventType:      observer.MeasurementCompleted,
		Timestamp:      time.Now(),
		RequestID:      requestID,
		ProcessingTime: elapsed,
		Success:        true,
		Method:         m.Method,
	})

	return &models.MeasureResponse{
		EyeWidthMM:        m.EyeWidthMM,
		BridgeWidthMM:     m.BridgeWidthMM,
		BSizeMM:           m.BSizeMM,
		Method:            m.Method,
		RequestID:         requestID,
		ProcessingTimeSec: math.Round(elapsed.Seconds()*1000) / 1000,
		Warnings:          warnings,
	}, nil
}

// captureWarnings computes the non-fatal capture diagnostics. Any failure
// here degrades to no warnings rather than failing the measurement.
func (s *measurementService) captureWarnings(frame DecodedFrame) []string {
	if !s.qualityOn || s.quality == nil || s.capture == nil {
		return nil
	}
	img, err := frame.Image()
	if err != nil {
		return nil
	}
	return s.capture.Validate(s.quality.Calculate(img))
}

// fail publishes a failure event and returns the error unchanged.
func (s *measurementService) fail(ctx context.Context, requestID string, start time.Time, err error) error {
	message := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
	}
	s.publish(ctx, observer.MeasurementEvent{
		EventType:      observer.MeasurementFailed,
		Timestamp:      time.Now(),
		RequestID:      requestID,
		ProcessingTime: time.Since(start),
		ErrorMessage:   message,
	})
	return err
}

func (s *measurementService) publish(ctx context.Context, event observer.MeasurementEvent) {
	if s.events != nil {
		s.events.NotifyObservers(ctx, event)
	}
}
