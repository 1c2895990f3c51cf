package observer

import (
	"context"
	"testing"
	"time"
)

func TestMetricsObserver_Counters(t *testing.T) {
	m := NewMetricsObserver()
	ctx := context.Background()

	m.OnEvent(ctx, MeasurementEvent{EventType: MeasurementStarted})
	m.OnEvent(ctx, MeasurementEvent{
		EventType:      MeasurementCompleted,
		Method:         "precise",
		ProcessingTime: 100 * time.Millisecond,
	})
	m.OnEvent(ctx, MeasurementEvent{EventType: MeasurementStarted})
	m.OnEvent(ctx, MeasurementEvent{
		EventType:    MeasurementFailed,
		ErrorMessage: "No face detected",
	})

	metrics := m.GetMetrics()
	if metrics["total_measurements"] != int64(2) {
		t.Errorf("Expected 2 total measurements, got %v", metrics["total_measurements"])
	}
	if metrics["successful_measurements"] != int64(1) {
		t.Errorf("Expected 1 successful measurement, got %v", metrics["successful_measurements"])
	}
	if metrics["failed_measurements"] != int64(1) {
		t.Errorf("Expected 1 failed measurement, got %v", metrics["failed_measurements"])
	}

	byMethod := metrics["by_method"].(map[string]int64)
	if byMethod["precise"] != 1 {
		t.Errorf("Expected 1 precise measurement, got %v", byMethod)
	}
	byFailure := metrics["by_failure"].(map[string]int64)
	if byFailure["No face detected"] != 1 {
		t.Errorf("Expected the failure reason to be counted, got %v", byFailure)
	}
}

func TestMetricsObserver_AverageProcessingTime(t *testing.T) {
	m := NewMetricsObserver()
	ctx := context.Background()

	m.OnEvent(ctx, MeasurementEvent{EventType: MeasurementCompleted, ProcessingTime: 100 * time.Millisecond})
	m.OnEvent(ctx, MeasurementEvent{EventType: MeasurementCompleted, ProcessingTime: 300 * time.Millisecond})

	metrics := m.GetMetrics()
	if metrics["avg_processing_time"] != (200 * time.Millisecond).String() {
		t.Errorf("Expected 200ms average, got %v", metrics["avg_processing_time"])
	}
}

type recordingObserver struct {
	name   string
	events []MeasurementEvent
}

func (r *recordingObserver) OnEvent(ctx context.Context, event MeasurementEvent) {
	r.events = append(r.events, event)
}

func (r *recordingObserver) GetObserverName() string { return r.name }

type panickyObserver struct{}

func (panickyObserver) OnEvent(ctx context.Context, event MeasurementEvent) {
	panic("observer failure")
}

func (panickyObserver) GetObserverName() string { return "panicky_observer" }

func TestEventPublisher_NotifiesAllObservers(t *testing.T) {
	p := NewEventPublisher()
	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	p.Subscribe(a)
	p.Subscribe(b)

	p.NotifyObservers(context.Background(), MeasurementEvent{EventType: MeasurementStarted})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("Expected both observers to receive the event, got %d and %d", len(a.events), len(b.events))
	}
}

func TestEventPublisher_Unsubscribe(t *testing.T) {
	p := NewEventPublisher()
	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	p.Subscribe(a)
	p.Subscribe(b)
	p.Unsubscribe(a)

	p.NotifyObservers(context.Background(), MeasurementEvent{EventType: MeasurementStarted})

	if len(a.events) != 0 {
		t.Error("Expected unsubscribed observer to receive no events")
	}
	if len(b.events) != 1 {
		t.Error("Expected remaining observer to still receive events")
	}
}

func TestEventPublisher_SurvivesPanickingObserver(t *testing.T) {
	p := NewEventPublisher()
	r := &recordingObserver{name: "recorder"}
	p.Subscribe(panickyObserver{})
	p.Subscribe(r)

	p.NotifyObservers(context.Background(), MeasurementEvent{EventType: MeasurementCompleted})

	if len(r.events) != 1 {
		t.Error("Expected delivery to continue past a panicking observer")
	}
}
