package smoketest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/okian/legends/internal/domain/units"
)

// expectedLegend is the built-in roster as the service should serve it.
type expectedLegend struct {
	name     string
	feets    float64
	imperial units.Imperial
	teams    []Team
}

var (
	liverpool = Team{Name: "Liverpool FC", City: "Liverpool"}
	manUtd    = Team{Name: "Manchester United", City: "Manchester"}
	chelsea   = Team{Name: "Chelsea FC", City: "London"}
	manCity   = Team{Name: "Manchester City", City: "Manchester"}
)

var expectedRoster = []expectedLegend{
	{name: "Steven Gerrard", feets: 6, imperial: units.Imperial{Feet: 6, Inch: 0}, teams: []Team{liverpool}},
	{name: "Wayne Rooney", feets: 5.9, imperial: units.Imperial{Feet: 5, Inch: 9}, teams: []Team{manUtd}},
	{name: "Frank Lampard", feets: 6, imperial: units.Imperial{Feet: 6, Inch: 0}, teams: []Team{chelsea, manCity}},
	{name: "Michael Owen", feets: 5.8, imperial: units.Imperial{Feet: 5, Inch: 8}, teams: []Team{liverpool, manUtd}},
}

// check is one request and the property its response must satisfy.
type check struct {
	name   string
	path   string
	status int
	verify func([]Record) error
}

func checks() []check {
	return []check{
		{name: "default roster", path: "/legends/", status: StatusOK, verify: verifyRoster},
		{name: "v1 imperial", path: "/v1/legends/", status: StatusOK, verify: all(verifyRoster, verifyV1Imperial)},
		{name: "v1 explicit imperial", path: "/v1/legends/?unit=imperial", status: StatusOK, verify: all(verifyRoster, verifyV1Imperial)},
		{name: "v1 metric", path: "/v1/legends/?unit=metric", status: StatusOK, verify: all(verifyRoster, verifyV1Metric)},
		{name: "v2 imperial", path: "/v2/legends/", status: StatusOK, verify: all(verifyRoster, verifyImperial)},
		{name: "v2 metric", path: "/v2/legends/?unit=metric", status: StatusOK, verify: all(verifyRoster, verifyV2Metric)},
		{name: "v3", path: "/v3/legends/", status: StatusOK, verify: all(verifyRoster, verifyImperial, verifyV3Metric)},
		{name: "v3 ignores unit", path: "/v3/legends/?unit=metric", status: StatusOK, verify: all(verifyRoster, verifyImperial, verifyV3Metric)},
		{name: "v1 invalid unit", path: "/v1/legends/?unit=furlong", status: StatusUnprocessableEntity},
		{name: "v2 invalid unit", path: "/v2/legends/?unit=furlong", status: StatusUnprocessableEntity},
	}
}

func all(fns ...func([]Record) error) func([]Record) error {
	return func(records []Record) error {
		for _, fn := range fns {
			if err := fn(records); err != nil {
				return err
			}
		}
		return nil
	}
}

// verifyRoster checks count, order and team resolution.
func verifyRoster(records []Record) error {
	if len(records) != len(expectedRoster) {
		return fmt.Errorf("expected %d legends, got %d", len(expectedRoster), len(records))
	}
	for i, want := range expectedRoster {
		got := records[i]
		if got.Name != want.name {
			return fmt.Errorf("legend %d: expected %q, got %q", i, want.name, got.Name)
		}
		if len(got.Teams) != len(want.teams) {
			return fmt.Errorf("%s: expected %d teams, got %d", want.name, len(want.teams), len(got.Teams))
		}
		for j, team := range want.teams {
			if got.Teams[j] != team {
				return fmt.Errorf("%s: team %d: expected %+v, got %+v", want.name, j, team, got.Teams[j])
			}
		}
	}
	return nil
}

func verifyV1Imperial(records []Record) error {
	for i, want := range expectedRoster {
		var h map[string]float64
		if err := strictDecode(records[i].Height, &h); err != nil {
			return fmt.Errorf("%s: %w", want.name, err)
		}
		if len(h) != 1 || h["feets"] != want.feets {
			return fmt.Errorf("%s: expected {feets: %v}, got %v", want.name, want.feets, h)
		}
	}
	return nil
}

func verifyV1Metric(records []Record) error {
	for i, want := range expectedRoster {
		var h map[string]float64
		if err := strictDecode(records[i].Height, &h); err != nil {
			return fmt.Errorf("%s: %w", want.name, err)
		}
		meters, ok := h["meters"]
		if len(h) != 1 || !ok {
			return fmt.Errorf("%s: expected {meters}, got %v", want.name, h)
		}
		if expected := units.FeetToMetric(units.Feet{Feets: want.feets}).Meters; !near(meters, expected) {
			return fmt.Errorf("%s: expected %v meters, got %v", want.name, expected, meters)
		}
	}
	return nil
}

func verifyImperial(records []Record) error {
	for i, want := range expectedRoster {
		var h units.Imperial
		if err := strictDecode(records[i].Height, &h); err != nil {
			return fmt.Errorf("%s: %w", want.name, err)
		}
		if h != want.imperial {
			return fmt.Errorf("%s: expected %+v, got %+v", want.name, want.imperial, h)
		}
	}
	return nil
}

func verifyV2Metric(records []Record) error {
	for i, want := range expectedRoster {
		var meters float64
		if err := strictDecode(records[i].Height, &meters); err != nil {
			return fmt.Errorf("%s: expected a number of meters: %w", want.name, err)
		}
		if expected := float64(units.ImperialToMeters(want.imperial)); !near(meters, expected) {
			return fmt.Errorf("%s: expected %v meters, got %v", want.name, expected, meters)
		}
	}
	return nil
}

func verifyV3Metric(records []Record) error {
	for i, want := range expectedRoster {
		got := records[i].HeightInMetric
		if got == nil {
			return fmt.Errorf("%s: missing height_in_metric", want.name)
		}
		if expected := float64(units.ImperialToMeters(want.imperial)); !near(*got, expected) {
			return fmt.Errorf("%s: expected height_in_metric %v, got %v", want.name, expected, *got)
		}
	}
	return nil
}

// strictDecode rejects unknown fields so a height of the wrong shape fails.
func strictDecode(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: height %s: %w", ErrUnexpected, raw, err)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}
