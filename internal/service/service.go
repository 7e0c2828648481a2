// internal/service/service.go

package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"solar_analysis/internal/analysis"
	"solar_analysis/internal/config"
	"solar_analysis/internal/domain"
	"solar_analysis/pkg/logger"
)

// Service wires the analysis engine to the boundary layer: result caching,
// batch fan-out and throughput accounting. The engine itself is stateless;
// all mutable state here is counters and the TTL cache.
type Service struct {
	cfg    *config.Config
	engine *analysis.Engine
	cache  *Cache

	stop chan struct{}

	// Lock-free statistics
	analyzeCount  uint64
	batchCount    uint64
	forecastCount uint64
	anomalyCount  uint64
	failedCount   uint64
	cacheHits     uint64
}

// NewService creates the service and starts the stats reporter.
func NewService(engine *analysis.Engine, cfg *config.Config) *Service {
	svc := &Service{
		cfg:    cfg,
		engine: engine,
		cache:  NewCache(time.Minute),
		stop:   make(chan struct{}),
	}

	go svc.reportStats()

	logger.Info(fmt.Sprintf("Service initialized (workers: %d, cache TTL: %ds)",
		cfg.BatchWorkers, cfg.CacheTTLSeconds))

	return svc
}

// Analyze runs the single-snapshot pipeline. Identical inputs may be served
// from cache: the engine is deterministic, so the cached result is
// indistinguishable from a fresh one.
func (svc *Service) Analyze(in domain.TelemetryInput) (result *domain.PredictionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.ComputationError{Err: fmt.Errorf("%v", r)}
			result = nil
			atomic.AddUint64(&svc.failedCount, 1)
		}
	}()

	key := analyzeCacheKey(in)
	if cached, found := svc.cache.Get(key); found {
		atomic.AddUint64(&svc.cacheHits, 1)
		return cached.(*domain.PredictionResult), nil
	}

	result, err = svc.engine.Analyze(in)
	if err != nil {
		atomic.AddUint64(&svc.failedCount, 1)
		return nil, err
	}

	if ttl := svc.cfg.CacheTTLSeconds; ttl > 0 {
		svc.cache.Set(key, result, time.Duration(ttl)*time.Second)
	}
	atomic.AddUint64(&svc.analyzeCount, 1)
	return result, nil
}

// Forecast produces a multi-day power forecast from hourly history.
func (svc *Service) Forecast(series []domain.TimeSeriesPoint, days int) (*domain.ForecastSeries, error) {
	if days <= 0 {
		days = svc.cfg.DefaultForecastDays
	}

	result, err := svc.engine.Forecast(series, days)
	if err != nil {
		atomic.AddUint64(&svc.failedCount, 1)
		return nil, err
	}
	atomic.AddUint64(&svc.forecastCount, 1)
	return result, nil
}

// DetectAnomalies flags outliers in a residual series.
func (svc *Service) DetectAnomalies(residuals []domain.ResidualPoint) (*domain.AnomalyReport, error) {
	result, err := svc.engine.DetectAnomalies(residuals)
	if err != nil {
		atomic.AddUint64(&svc.failedCount, 1)
		return nil, err
	}
	atomic.AddUint64(&svc.anomalyCount, 1)
	return result, nil
}

// ClassifyImage runs the rule-table image classifier.
func (svc *Service) ClassifyImage(imageURL string) *domain.ImageFinding {
	return svc.engine.ClassifyImage(imageURL)
}

// Engine exposes the underlying engine for model introspection endpoints.
func (svc *Service) Engine() *analysis.Engine {
	return svc.engine
}

// analyzeCacheKey renders every telemetry field into a stable key. Pointers
// are dereferenced so equal payloads hash equally; nil prints as "-".
func analyzeCacheKey(in domain.TelemetryInput) string {
	var b strings.Builder
	b.WriteString("analyze")
	for _, f := range []*float64{
		in.Irradiance, in.AmbientTemp, in.PanelTemp, in.BatterySoc,
		in.InverterEff, in.SoilingIndex, in.Tilt, in.Azimuth,
		in.WindSpeed, in.PRBaseline, in.SystemCapacity, in.ActualOutput,
	} {
		if f == nil {
			b.WriteString(":-")
		} else {
			fmt.Fprintf(&b, ":%g", *f)
		}
	}
	return b.String()
}

// reportStats prints statistics periodically
func (svc *Service) reportStats() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info(fmt.Sprintf("Analyses: %d | Batch items: %d | Forecasts: %d | Anomaly runs: %d | Failed: %d | Cache: %d items, %d hits",
				atomic.LoadUint64(&svc.analyzeCount),
				atomic.LoadUint64(&svc.batchCount),
				atomic.LoadUint64(&svc.forecastCount),
				atomic.LoadUint64(&svc.anomalyCount),
				atomic.LoadUint64(&svc.failedCount),
				svc.cache.Size(),
				atomic.LoadUint64(&svc.cacheHits)))
		case <-svc.stop:
			return
		}
	}
}

// Close cleanup resources
func (svc *Service) Close() error {
	close(svc.stop)
	if svc.cache != nil {
		svc.cache.Close()
	}
	return nil
}
