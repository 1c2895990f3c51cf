package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// MeasurementEvent represents one stage of a measurement request's lifecycle
type MeasurementEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	RequestID      string                 `json:"request_id"`
	ProcessingTime time.Duration          `json:"processing_time"`
	Success        bool                   `json:"success"`
	Method         string                 `json:"method,omitempty"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of measurement event
type EventType string

const (
	// MeasurementStarted when a measurement request begins
	MeasurementStarted EventType = "measurement_started"
	// MeasurementCompleted when a measurement finishes successfully
	MeasurementCompleted EventType = "measurement_completed"
	// MeasurementFailed when a measurement fails
	MeasurementFailed EventType = "measurement_failed"
	// FrameDecoded when the submitted image decodes successfully
	FrameDecoded EventType = "frame_decoded"
	// FrameDecodeFailed when the submitted image cannot be decoded
	FrameDecodeFailed EventType = "frame_decode_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event MeasurementEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event MeasurementEvent)
}

// LoggingObserver logs measurement events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles measurement events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event MeasurementEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"request_id":      event.RequestID,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}

	if event.Method != "" {
		fields["method"] = event.Method
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	switch event.EventType {
	case MeasurementStarted:
		o.logger.WithFields(fields).Info("Measurement started")
	case MeasurementCompleted:
		o.logger.WithFields(fields).Info("Measurement completed")
	case MeasurementFailed:
		o.logger.WithFields(fields).Warn("Measurement failed")
	case FrameDecoded:
		o.logger.WithFields(fields).Debug("Frame decoded")
	case FrameDecodeFailed:
		o.logger.WithFields(fields).Error("Frame decode failed")
	default:
		o.logger.WithFields(fields).Info("Measurement event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver collects counters from measurement events for the stats
// endpoint.
type MetricsObserver struct {
	mu                     sync.RWMutex
	totalMeasurements      int64
	successfulMeasurements int64
	failedMeasurements     int64
	totalProcessingTime    time.Duration
	byMethod               map[string]int64
	byFailure              map[string]int64
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		byMethod:  make(map[string]int64),
		byFailure: make(map[string]int64),
	}
}

// OnEvent handles measurement events by collecting metrics
func (o *MetricsObserver) OnEvent(ctx context.Context, event MeasurementEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case MeasurementStarted:
		o.totalMeasurements++
	case MeasurementCompleted:
		o.successfulMeasurements++
		o.totalProcessingTime += event.ProcessingTime
		if event.Method != "" {
			o.byMethod[event.Method]++
		}
	case MeasurementFailed:
		o.failedMeasurements++
		if event.ErrorMessage != "" {
			o.byFailure[event.ErrorMessage]++
		}
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns a snapshot of the collected counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avgProcessingTime := time.Duration(0)
	if o.successfulMeasurements > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(o.successfulMeasurements)
	}

	byMethod := make(map[string]int64, len(o.byMethod))
	for k, v := range o.byMethod {
		byMethod[k] = v
	}
	byFailure := make(map[string]int64, len(o.byFailure))
	for k, v := range o.byFailure {
		byFailure[k] = v
	}

	return map[string]interface{}{
		"total_measurements":      o.totalMeasurements,
		"successful_measurements": o.successfulMeasurements,
		"failed_measurements":     o.failedMeasurements,
		"avg_processing_time":     avgProcessingTime.String(),
		"by_method":               byMethod,
		"by_failure":              byFailure,
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers delivers the event to every subscribed observer. Delivery
// is synchronous so counters are consistent by the time the response is
// written; a panicking observer never takes the request down with it.
func (p *EventPublisher) NotifyObservers(ctx context.Context, event MeasurementEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, observer := range observers {
		func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}
