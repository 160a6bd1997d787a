package smoketest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/legends/internal/adapters/http/api"
	service "github.com/okian/legends/internal/app"
	"github.com/okian/legends/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newLegendsServer() (*httptest.Server, *service.Service) {
	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(mux)
	return httptest.NewServer(api.RequestIDMiddleware(mux)), svc
}

// echoing tags every response with the incoming request id.
func echoing(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(requestIDHeader, r.Header.Get(requestIDHeader))
		h(w, r)
	})
}

func TestRun_AgainstService(t *testing.T) {
	Convey("Given a running legends server", t, func() {
		srv, svc := newLegendsServer()
		defer srv.Close()
		defer svc.Stop()

		Convey("When the smoke run executes", func() {
			stats, err := Run(context.Background(), &Config{
				BaseURL: srv.URL,
				Rounds:  3,
				Workers: 4,
				Timeout: 5 * time.Second,
			})

			Convey("Then every check passes", func() {
				So(err, ShouldBeNil)
				So(stats.Failed, ShouldEqual, 0)
				So(stats.Passed, ShouldEqual, 3*len(checks()))
				So(stats.RunID, ShouldStartWith, "legends-check-")
			})
		})
	})
}

func TestRun_DetectsWrongHeights(t *testing.T) {
	Convey("Given a server that serves v2 heights on every route", t, func() {
		srv, svc := newLegendsServer()
		defer svc.Stop()
		defer srv.Close()

		broken := httptest.NewServer(echoing(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthz" {
				w.WriteHeader(http.StatusOK)
				return
			}
			req, _ := http.NewRequestWithContext(r.Context(), http.MethodGet, srv.URL+"/v2/legends/", http.NoBody)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			defer resp.Body.Close()
			var body []json.RawMessage
			_ = json.NewDecoder(resp.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(body)
		}))
		defer broken.Close()

		Convey("When the smoke run executes", func() {
			stats, err := Run(context.Background(), &Config{BaseURL: broken.URL, Rounds: 1, Workers: 2})

			Convey("Then it reports failed checks", func() {
				So(errors.Is(err, ErrChecksFailed), ShouldBeTrue)
				So(stats.Failed, ShouldBeGreaterThan, 0)
				So(stats.Passed, ShouldBeGreaterThan, 0)
				So(stats.Failures, ShouldNotBeEmpty)
			})
		})
	})
}

func TestRun_Unhealthy(t *testing.T) {
	Convey("Given a server that fails its health check", t, func() {
		srv := httptest.NewServer(echoing(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("Then the run stops with ErrUnhealthy", func() {
			_, err := Run(context.Background(), &Config{BaseURL: srv.URL})
			So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
		})
	})

	Convey("Given a server that does not echo request ids", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		Convey("Then the health check fails", func() {
			_, err := Run(context.Background(), &Config{BaseURL: srv.URL})
			So(errors.Is(err, ErrUnexpected), ShouldBeTrue)
		})
	})
}

func TestVerifiers(t *testing.T) {
	Convey("Given hand-built records", t, func() {
		records := make([]Record, len(expectedRoster))
		for i, l := range expectedRoster {
			records[i] = Record{Name: l.name, Teams: l.teams}
		}

		Convey("Then the roster check accepts the expected order", func() {
			So(verifyRoster(records), ShouldBeNil)
		})

		Convey("Then a missing team is rejected", func() {
			records[2].Teams = records[2].Teams[:1]
			So(verifyRoster(records), ShouldNotBeNil)
		})

		Convey("Then v2 metric heights are checked against 1.8288, 1.7526 and 1.7272", func() {
			for i, m := range []string{"1.8288", "1.7526", "1.8288", "1.7272"} {
				records[i].Height = json.RawMessage(m)
			}
			So(verifyV2Metric(records), ShouldBeNil)

			records[1].Height = json.RawMessage(`{"meters":1.7526}`)
			So(verifyV2Metric(records), ShouldNotBeNil)
		})

		Convey("Then v1 metric heights use the feets formula", func() {
			for i, l := range expectedRoster {
				raw, _ := json.Marshal(map[string]float64{"meters": l.feets / 3.2808399})
				records[i].Height = raw
			}
			So(verifyV1Metric(records), ShouldBeNil)

			records[0].Height = json.RawMessage(`{"meters":1.8288,"feets":6}`)
			So(verifyV1Metric(records), ShouldNotBeNil)
		})
	})
}

func TestSetupLogging(t *testing.T) {
	Convey("Given a log file path", t, func() {
		path := filepath.Join(t.TempDir(), "check.log")
		closer, err := SetupLogging(path)
		So(err, ShouldBeNil)
		defer func() { _ = logger.Init() }()

		Convey("Then log records are written to it", func() {
			logger.Get().Info(context.Background(), "hello from the smoke checker")
			So(closer.Close(), ShouldBeNil)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "hello from the smoke checker")
		})
	})
}
