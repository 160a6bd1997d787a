package smoketest

import (
	"encoding/json"
	"time"
)

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL string        // Base URL of the service
	Rounds  int           // Times every check is repeated
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for run output
	Verbose bool          // Log every passing check
}

// Team is a club as returned by the legends endpoints.
type Team struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Record is one legend as returned by any version. Height is kept raw since
// its shape depends on version and unit.
type Record struct {
	Name           string          `json:"name"`
	Height         json.RawMessage `json:"height"`
	HeightInMetric *float64        `json:"height_in_metric"`
	Position       string          `json:"position"`
	BirthDate      string          `json:"birth_date"`
	Teams          []Team          `json:"teams"`
}

// Stats holds run statistics.
type Stats struct {
	RunID     string
	Requests  int
	Passed    int
	Failed    int
	Failures  []string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
