package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/legends/pkg/logger"
)

// Run health-checks the service, then runs every check Rounds times across
// Workers goroutines. It returns ErrChecksFailed if any check failed.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	cfg := withDefaults(*config)
	stats := &Stats{
		RunID:     "legends-check-" + uuid.NewString(),
		StartTime: time.Now(),
	}
	log := logger.Named("smoketest").With(logger.String("runID", stats.RunID))

	log.Info(ctx, "starting legends smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
		logger.String("logFile", cfg.LogFile),
		logger.Bool("verbose", cfg.Verbose))

	client := newHTTPClient(cfg.Timeout, stats.RunID)

	if err := checkServiceHealth(ctx, client, cfg.BaseURL); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}
	log.Info(ctx, "service is healthy")

	runChecks(ctx, log, client, &cfg, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrChecksFailed, stats.Failed, stats.Requests)
	}
	log.Info(ctx, "smoke run completed successfully")
	return stats, nil
}

func withDefaults(c Config) Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// checkServiceHealth verifies the service is serving metrics.
func checkServiceHealth(ctx context.Context, client *HTTPClient, baseURL string) error {
	status, _, err := client.fetch(ctx, baseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if status != StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, status)
	}
	return nil
}

// runChecks fans the check list out to a worker pool.
func runChecks(ctx context.Context, log logger.Logger, client *HTTPClient, cfg *Config, stats *Stats) {
	list := checks()

	var (
		passed   int64
		failed   int64
		mu       sync.Mutex
		failures []string
	)

	jobs := make(chan check, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if ctx.Err() != nil {
					continue
				}
				if err := runCheck(ctx, client, cfg.BaseURL, c); err != nil {
					atomic.AddInt64(&failed, 1)
					mu.Lock()
					if len(failures) < maxReportedFailures {
						failures = append(failures, c.name+": "+err.Error())
					}
					mu.Unlock()
					log.Warn(ctx, "check failed", logger.String("check", c.name), logger.Error(err))
					continue
				}
				atomic.AddInt64(&passed, 1)
				if cfg.Verbose {
					log.Info(ctx, "check passed", logger.String("check", c.name))
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for round := 0; round < cfg.Rounds; round++ {
			for _, c := range list {
				select {
				case <-ctx.Done():
					return
				case jobs <- c:
				}
			}
		}
	}()

	wg.Wait()

	stats.Passed = int(atomic.LoadInt64(&passed))
	stats.Failed = int(atomic.LoadInt64(&failed))
	stats.Requests = stats.Passed + stats.Failed
	stats.Failures = failures
}

func runCheck(ctx context.Context, client *HTTPClient, baseURL string, c check) error {
	url := baseURL + c.path
	if c.status != StatusOK {
		status, body, err := client.fetch(ctx, url)
		if err != nil {
			return err
		}
		if status != c.status {
			return fmt.Errorf("%w: expected status %d, got %d", ErrUnexpected, c.status, status)
		}
		var resp struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(body, &resp); err != nil || resp.Code != "invalid_unit" {
			return fmt.Errorf("%w: expected invalid_unit error body, got %s", ErrUnexpected, body)
		}
		return nil
	}

	records, err := client.fetchLegends(ctx, url)
	if err != nil {
		return err
	}
	return c.verify(records)
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var requestsPerSecond float64
	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.Requests) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("requests", stats.Requests),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("requestsPerSecond", requestsPerSecond))

	for _, f := range stats.Failures {
		log.Error(ctx, "failure", logger.String("detail", f))
	}
}
