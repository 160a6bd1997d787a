// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/legends/internal/adapters/repository"
	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/roster"
	"github.com/okian/legends/pkg/logger"
	"github.com/okian/legends/pkg/metrics"
)

// Service serves the legends roster from a read-only fixture store.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	builder *roster.Builder

	// Configuration
	defaultVersion model.Version
	fixtureFile    string
	storeOpts      []repository.Option

	// State
	started   bool
	startedAt time.Time
	served    [3]atomic.Int64 // by version: v1, v2, v3

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultVersion sets the version served on the unversioned route.
func WithDefaultVersion(v model.Version) Option {
	return func(s *Service) {
		if v != "" {
			s.defaultVersion = v
		}
	}
}

// WithFixtureFile loads the roster from a YAML file at Start.
func WithFixtureFile(path string) Option {
	return func(s *Service) {
		s.fixtureFile = path
	}
}

// WithStore injects a ready store; Start then skips building one.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStoreOptions passes options to the fixture store built at Start.
func WithStoreOptions(opts ...repository.Option) Option {
	return func(s *Service) {
		s.storeOpts = append(s.storeOpts, opts...)
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultVersion: model.V3,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the fixture store. It must be called before ListLegends.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Named("legends")
	}

	if s.store == nil {
		opts := append([]repository.Option(nil), s.storeOpts...)
		if s.fixtureFile != "" {
			fx, err := repository.LoadFixtureFile(s.fixtureFile)
			if err != nil {
				return fmt.Errorf("load fixture: %w", err)
			}
			opts = append(opts, repository.WithFixture(fx))
		}
		store, err := repository.NewFixtureStore(ctx, opts...)
		if err != nil {
			return fmt.Errorf("build fixture store: %w", err)
		}
		s.store = store
	}
	s.builder = roster.NewBuilder(s.store)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "legends service started",
		logger.Int("players", len(s.store.Players(ctx))),
		logger.Int("teams", len(s.store.Teams(ctx))),
		logger.String("defaultVersion", string(s.defaultVersion)),
		logger.String("fixtureFile", s.fixtureFile),
	)

	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "legends service stopped")
}

// DefaultVersion returns the version served on the unversioned route.
func (s *Service) DefaultVersion() model.Version {
	return s.defaultVersion
}

// ListLegends returns the roster shaped for version and unit. Every record is
// also emitted at debug level.
func (s *Service) ListLegends(ctx context.Context, version model.Version, unit model.Unit) ([]roster.Legend, error) {
	s.mu.RLock()
	builder, started := s.builder, s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}

	start := time.Now()
	legends, err := builder.Legends(ctx, version, unit)
	if err != nil {
		metrics.RecordErrorByComponent("roster", "assemble")
		s.logger.Error(ctx, "roster assembly failed",
			logger.String("version", string(version)),
			logger.Error(err),
		)
		return nil, err
	}
	metrics.RecordRosterBuildLatency(string(version), float64(time.Since(start).Microseconds())/1000)

	effectiveUnit := unit
	if !version.AcceptsUnit() {
		effectiveUnit = "both"
	}
	if version == model.V3 || unit == model.UnitMetric {
		for range legends {
			metrics.RecordHeightConversion(string(version))
		}
	}
	metrics.RecordLegendsServed(string(version), string(effectiveUnit), len(legends))
	s.countServed(version, len(legends))

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		converted := version.AcceptsUnit() && unit == model.UnitMetric
		for _, l := range legends {
			fields := []logger.Field{
				logger.String("version", string(version)),
				logger.String("unit", string(effectiveUnit)),
				logger.Any("legend", l),
			}
			if converted {
				fields = append(fields, logger.Any("convertedHeight", l.Height))
			}
			s.logger.Debug(ctx, "assembled legend", fields...)
		}
	}

	return legends, nil
}

func (s *Service) countServed(version model.Version, n int) {
	switch version {
	case model.V1:
		s.served[0].Add(int64(n))
	case model.V2:
		s.served[1].Add(int64(n))
	case model.V3:
		s.served[2].Add(int64(n))
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"defaultVersion": string(s.defaultVersion),
		"servedV1":       s.served[0].Load(),
		"servedV2":       s.served[1].Load(),
		"servedV3":       s.served[2].Load(),
	}

	if s.started {
		ctx := context.Background()
		stats["players"] = len(s.store.Players(ctx))
		stats["teams"] = len(s.store.Teams(ctx))
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		if o, ok := s.store.(interface{ Origin() string }); ok {
			stats["fixtureOrigin"] = o.Origin()
		}
	}

	return stats
}
