package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	service "github.com/okian/legends/internal/app"
	"github.com/okian/legends/internal/adapters/repository"
	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/internal/domain/roster"
	"github.com/okian/legends/internal/domain/units"
	"github.com/okian/legends/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it defaults to v3", func() {
			So(svc, ShouldNotBeNil)
			So(svc.DefaultVersion(), ShouldEqual, model.V3)
		})
	})

	Convey("Given a new service with a custom default version", t, func() {
		svc := service.New(service.WithDefaultVersion(model.V1))

		Convey("Then the version is kept", func() {
			So(svc.DefaultVersion(), ShouldEqual, model.V1)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		Convey("When listing before Start", func() {
			_, err := svc.ListLegends(context.Background(), model.V3, model.UnitImperial)

			Convey("Then ErrNotStarted is returned", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When starting the service twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			err := svc.Start(context.Background())

			Convey("Then the second start is a no-op", func() {
				So(err, ShouldBeNil)
				So(svc.GetStats()["started"], ShouldBeTrue)
			})
		})
	})

	Convey("Given a fixture file that does not exist", t, func() {
		svc := service.New(service.WithFixtureFile(filepath.Join(t.TempDir(), "missing.yaml")))

		Convey("Then Start fails", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
		})
	})

	Convey("Given store options that break the fixture", t, func() {
		svc := service.New(service.WithStoreOptions(
			repository.WithPlayers([]model.Player{{Name: "Nobody"}}),
		))

		Convey("Then Start fails with ErrInvalidFixture", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, repository.ErrInvalidFixture), ShouldBeTrue)
		})
	})
}

func TestService_ListLegends(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When listing v1 in metric", func() {
			legends, err := svc.ListLegends(ctx, model.V1, model.UnitMetric)

			Convey("Then metric heights are returned", func() {
				So(err, ShouldBeNil)
				So(legends, ShouldHaveLength, 4)
				So(legends[0].Height, ShouldHaveSameTypeAs, units.Metric{})
			})
		})

		Convey("When listing v2 in imperial", func() {
			legends, err := svc.ListLegends(ctx, model.V2, model.UnitImperial)

			Convey("Then feet and inch heights are returned", func() {
				So(err, ShouldBeNil)
				So(legends[3].Height, ShouldResemble, units.Imperial{Feet: 5, Inch: 8})
			})
		})

		Convey("When an unknown version is requested", func() {
			_, err := svc.ListLegends(ctx, model.Version("v4"), model.UnitImperial)

			Convey("Then ErrInvalidVersion is returned", func() {
				So(errors.Is(err, model.ErrInvalidVersion), ShouldBeTrue)
			})
		})

		Convey("When stats are read after serving", func() {
			_, err := svc.ListLegends(ctx, model.V3, model.UnitImperial)
			So(err, ShouldBeNil)
			stats := svc.GetStats()

			Convey("Then counts and fixture sizes are reported", func() {
				So(stats["servedV3"], ShouldEqual, int64(4))
				So(stats["players"], ShouldEqual, 4)
				So(stats["teams"], ShouldEqual, 4)
				So(stats["fixtureOrigin"], ShouldEqual, "builtin")
				So(stats["defaultVersion"], ShouldEqual, "v3")
			})
		})
	})
}

func TestService_DebugRecords(t *testing.T) {
	Convey("Given a service logging at debug level", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithWriter(&buf)), ShouldBeNil)
		So(logger.SetLevelString("debug"), ShouldBeNil)
		defer func() { _ = logger.Init() }()

		svc := service.New(service.WithLogger(logger.Named("legends")))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("When listing legends", func() {
			_, err := svc.ListLegends(context.Background(), model.V2, model.UnitMetric)
			So(err, ShouldBeNil)

			Convey("Then one debug record is written per legend", func() {
				So(strings.Count(buf.String(), "assembled legend"), ShouldEqual, 4)
				So(buf.String(), ShouldContainSubstring, "Steven Gerrard")
				So(strings.Count(buf.String(), "convertedHeight="), ShouldEqual, 4)
			})
		})
	})
}

const fixtureYAML = `
teams:
  - id: liverpool
    name: Liverpool FC
    city: Liverpool
players:
  - name: Jamie Carragher
    decimal_feet: 6.1
    height: {feet: 6, inch: 1}
    position: Defender
    birth_date: "1978-01-28"
    teams: [liverpool]
`

func TestService_FixtureFile(t *testing.T) {
	Convey("Given a service loading its roster from a file", t, func() {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		So(os.WriteFile(path, []byte(fixtureYAML), 0o600), ShouldBeNil)

		svc := service.New(service.WithFixtureFile(path))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("Then the file roster is served", func() {
			legends, err := svc.ListLegends(context.Background(), model.V3, "")
			So(err, ShouldBeNil)
			So(legends, ShouldHaveLength, 1)
			So(legends[0].Name, ShouldEqual, "Jamie Carragher")
			So(legends[0].Teams, ShouldResemble, []roster.TeamView{{Name: "Liverpool FC", City: "Liverpool"}})
			So(svc.GetStats()["fixtureOrigin"], ShouldEqual, "file")
		})
	})
}

func TestService_Concurrency(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("When many goroutines list concurrently", func() {
			const numGoroutines = 16
			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines*len(model.Versions()))

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for _, v := range model.Versions() {
						legends, err := svc.ListLegends(context.Background(), v, model.UnitMetric)
						if err != nil {
							errs <- err
							continue
						}
						if len(legends) != 4 {
							errs <- errors.New("unexpected roster size")
						}
					}
				}()
			}
			wg.Wait()
			close(errs)

			Convey("Then no errors occur and every request is counted", func() {
				var collected []error
				for err := range errs {
					collected = append(collected, err)
				}
				So(collected, ShouldBeEmpty)
				stats := svc.GetStats()
				So(stats["servedV1"], ShouldEqual, int64(numGoroutines*4))
				So(stats["servedV2"], ShouldEqual, int64(numGoroutines*4))
				So(stats["servedV3"], ShouldEqual, int64(numGoroutines*4))
			})
		})
	})
}
