package container

import (
	"fmt"
	"net/http"

	"go-face-measure/internal/config"
	"go-face-measure/internal/logger"
	"go-face-measure/internal/measure"
	"go-face-measure/internal/observer"
	"go-face-measure/internal/quality"
	"go-face-measure/internal/repository"
	"go-face-measure/internal/service"
	"go-face-measure/internal/storage"
	"go-face-measure/internal/transport"
	"go-face-measure/internal/vision"
	"go-face-measure/pkg/validation"
)

// Container holds all application dependencies
type Container struct {
	config      *config.Config
	faceCascade *vision.FaceCascade
	eyeCascade  *vision.EyeCascade
	pipeline    *measure.Pipeline
	metrics     *observer.MetricsObserver
	svc         service.MeasurementService
	handler     http.Handler
}

// NewContainer builds the dependency graph: cascade models and the
// measurement pipeline, then the request-handling layers around them.
func NewContainer(cfg *config.Config) (*Container, error) {
	faceCascade, err := vision.NewFaceCascade(cfg.FaceCascadeFile, vision.DefaultFaceCascadeParams())
	if err != nil {
		return nil, fmt.Errorf("failed to load face cascade: %w", err)
	}

	eyeCascade, err := vision.NewEyeCascade(cfg.EyeCascadeFile, vision.DefaultEyeCascadeParams())
	if err != nil {
		faceCascade.Close()
		return nil, fmt.Errorf("failed to load eye cascade: %w", err)
	}

	pipeline := measure.NewPipeline(
		faceCascade,
		eyeCascade,
		vision.NewHoughIrisLocator(vision.DefaultIrisHoughParams()),
		vision.NewHoughPupilLocator(vision.DefaultPupilHoughParams()),
		measure.DefaultOptions().WithInterpupillary(cfg.InterpupillaryMM),
	)

	events := observer.NewEventPublisher()
	metrics := observer.NewMetricsObserver()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	events.Subscribe(metrics)

	fetcher := storage.NewHTTPImageFetcher(cfg.MaxRequestBodySize)
	frames := repository.NewRequestFrameRepository(validation.NewURLValidator(), fetcher)

	decoder := service.FrameDecoderFunc(func(data []byte) (service.DecodedFrame, error) {
		return vision.DecodeFrame(data)
	})

	svc := service.NewMeasurementService(
		frames,
		decoder,
		pipeline,
		quality.NewCalculator(),
		validation.NewCaptureValidator(),
		events,
		cfg.QualityChecks,
	)

	handler := transport.NewHandler(svc, metrics, cfg)

	return &Container{
		config:      cfg,
		faceCascade: faceCascade,
		eyeCascade:  eyeCascade,
		pipeline:    pipeline,
		metrics:     metrics,
		svc:         svc,
		handler:     handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the cascade models and the pipeline's worker pool.
func (c *Container) Close() {
	c.pipeline.Close()
	c.eyeCascade.Close()
	c.faceCascade.Close()
}
