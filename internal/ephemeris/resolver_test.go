package ephemeris

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"cosmicmatch/internal/timezone"
)

type stubZoneFinder struct {
	zone string
	err  error
}

func (s *stubZoneFinder) GetTimezone(latitude, longitude float64) (string, error) {
	return s.zone, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_Compute(t *testing.T) {
	tests := []struct {
		name     string
		zones    ZoneFinder
		date     string
		clock    string
		lat      float64
		lon      float64
		wantTZ   string
		wantUTC  time.Time
		wantErr  error
		validate func(*testing.T, *Result)
	}{
		{
			name:    "London summer time",
			zones:   &stubZoneFinder{zone: "Europe/London"},
			date:    "1990-06-15",
			clock:   "14:30",
			lat:     51.5074,
			lon:     -0.1278,
			wantTZ:  "Europe/London",
			wantUTC: time.Date(1990, 6, 15, 13, 30, 0, 0, time.UTC),
			validate: func(t *testing.T, r *Result) {
				if math.Abs(r.JulianDay-2448058.0625) > 1e-9 {
					t.Errorf("JulianDay = %v, want %v", r.JulianDay, 2448058.0625)
				}
				// Sun in late Gemini
				if sun := r.Planets.Of(Sun); sun < 83.5 || sun > 85 {
					t.Errorf("Sun = %v, want within [83.5, 85]", sun)
				}
				if r.HouseSystem != Placidus {
					t.Errorf("HouseSystem = %v, want %v", r.HouseSystem, Placidus)
				}
			},
		},
		{
			name:    "New York winter time",
			zones:   &stubZoneFinder{zone: "America/New_York"},
			date:    "2021-01-15",
			clock:   "12:00:30",
			lat:     40.7128,
			lon:     -74.0060,
			wantTZ:  "America/New_York",
			wantUTC: time.Date(2021, 1, 15, 17, 0, 30, 0, time.UTC),
		},
		{
			name:    "New York daylight time",
			zones:   &stubZoneFinder{zone: "America/New_York"},
			date:    "2021-07-01",
			clock:   "12:00",
			lat:     40.7128,
			lon:     -74.0060,
			wantTZ:  "America/New_York",
			wantUTC: time.Date(2021, 7, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			// 01:30 happens twice; the later, GMT reading wins
			name:    "London repeated hour resolves to standard time",
			zones:   &stubZoneFinder{zone: "Europe/London"},
			date:    "2021-10-31",
			clock:   "01:30",
			lat:     51.5074,
			lon:     -0.1278,
			wantTZ:  "Europe/London",
			wantUTC: time.Date(2021, 10, 31, 1, 30, 0, 0, time.UTC),
		},
		{
			// 01:30 never happens; it is read as 02:30 BST
			name:    "London skipped hour moves forward",
			zones:   &stubZoneFinder{zone: "Europe/London"},
			date:    "2021-03-28",
			clock:   "01:30",
			lat:     51.5074,
			lon:     -0.1278,
			wantTZ:  "Europe/London",
			wantUTC: time.Date(2021, 3, 28, 1, 30, 0, 0, time.UTC),
		},
		{
			name:    "zone lookup miss falls back to UTC",
			zones:   &stubZoneFinder{err: errors.New("no zone")},
			date:    "2000-01-01",
			clock:   "00:00",
			lat:     0,
			lon:     0,
			wantTZ:  "UTC",
			wantUTC: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			validate: func(t *testing.T, r *Result) {
				if r.JulianDay != 2451544.5 {
					t.Errorf("JulianDay = %v, want %v", r.JulianDay, 2451544.5)
				}
			},
		},
		{
			name:    "empty zone name falls back to UTC",
			zones:   &stubZoneFinder{zone: ""},
			date:    "2000-01-01",
			clock:   "00:00",
			wantTZ:  "UTC",
			wantUTC: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unknown zone name falls back to UTC",
			zones:   &stubZoneFinder{zone: "Mars/Olympus_Mons"},
			date:    "2000-01-01",
			clock:   "06:00",
			wantTZ:  "UTC",
			wantUTC: time.Date(2000, 1, 1, 6, 0, 0, 0, time.UTC),
		},
		{
			name:    "nil finder uses UTC",
			zones:   nil,
			date:    "2000-01-01",
			clock:   "12:00",
			wantTZ:  "UTC",
			wantUTC: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "polar latitude uses porphyry",
			zones:   &stubZoneFinder{zone: "Arctic/Longyearbyen"},
			date:    "2010-03-01",
			clock:   "08:15",
			lat:     78.2232,
			lon:     15.6267,
			wantTZ:  "Arctic/Longyearbyen",
			wantUTC: time.Date(2010, 3, 1, 7, 15, 0, 0, time.UTC),
			validate: func(t *testing.T, r *Result) {
				if r.HouseSystem != Porphyry {
					t.Errorf("HouseSystem = %v, want %v", r.HouseSystem, Porphyry)
				}
			},
		},
		{
			name:    "malformed time",
			zones:   &stubZoneFinder{zone: "Europe/London"},
			date:    "1990-06-15",
			clock:   "25:99",
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "impossible date",
			zones:   &stubZoneFinder{zone: "Europe/London"},
			date:    "1990-02-30",
			clock:   "10:00",
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "empty input",
			date:    "",
			clock:   "",
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:    "date outside supported range",
			date:    "3500-01-01",
			clock:   "10:00",
			wantErr: ErrEphemerisComputation,
		},
		{
			name:    "non-finite latitude",
			date:    "2000-01-01",
			clock:   "10:00",
			lat:     math.NaN(),
			wantErr: ErrEphemerisComputation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tt.zones, discardLogger())

			got, err := resolver.Compute(tt.date, tt.clock, tt.lat, tt.lon)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compute() error = %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Errorf("Compute() returned partial result %+v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Compute() unexpected error = %v", err)
			}
			if got.Timezone != tt.wantTZ {
				t.Errorf("Timezone = %v, want %v", got.Timezone, tt.wantTZ)
			}
			if !got.UTC.Equal(tt.wantUTC) {
				t.Errorf("UTC = %v, want %v", got.UTC, tt.wantUTC)
			}
			assertCompleteChart(t, got)

			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func assertCompleteChart(t *testing.T, r *Result) {
	t.Helper()

	if len(r.HouseCusps) != 12 {
		t.Errorf("len(HouseCusps) = %d, want 12", len(r.HouseCusps))
	}
	if len(r.Planets.Map()) != NumBodies {
		t.Errorf("len(Planets) = %d, want %d", len(r.Planets.Map()), NumBodies)
	}
	if r.Ascendant != r.HouseCusps[0] {
		t.Errorf("Ascendant = %v, want first cusp %v", r.Ascendant, r.HouseCusps[0])
	}

	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= 360 {
			t.Errorf("%s = %v, want finite angle in [0, 360)", name, v)
		}
	}
	check("Ascendant", r.Ascendant)
	for i, c := range r.HouseCusps {
		check(fmt.Sprintf("cusp %d", i+1), c)
	}
	for _, b := range Bodies() {
		check(b.String(), r.Planets.Of(b))
	}
}

func TestResolver_Compute_Deterministic(t *testing.T) {
	resolver := NewResolver(&stubZoneFinder{zone: "Asia/Tokyo"}, discardLogger())

	first, err := resolver.Compute("1985-11-03", "06:45:10", 35.6762, 139.6503)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = resolver.Compute("1985-11-03", "06:45:10", 35.6762, 139.6503)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if errs[i] != nil {
			t.Fatalf("Compute() #%d unexpected error = %v", i, errs[i])
		}
		if !reflect.DeepEqual(first, r) {
			t.Errorf("Compute() #%d = %+v, want %+v", i, r, first)
		}
	}
}

func TestResolver_Compute_WithTimezoneService(t *testing.T) {
	svc, err := timezone.NewService()
	if err != nil {
		t.Fatalf("Failed to create timezone service: %v", err)
	}
	resolver := NewResolver(svc, discardLogger())

	london, err := resolver.Compute("1990-06-15", "14:30", 51.5074, -0.1278)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	if london.Timezone != "Europe/London" {
		t.Errorf("Timezone = %v, want Europe/London", london.Timezone)
	}
	assertCompleteChart(t, london)

	ocean, err := resolver.Compute("2000-01-01", "00:00", 0, 0)
	if err != nil {
		t.Fatalf("Compute() unexpected error = %v", err)
	}
	// The Gulf of Guinea is either unmapped or covered by a nautical zone
	if ocean.Timezone != "UTC" && ocean.Timezone != "Etc/GMT" {
		t.Errorf("Timezone = %v, want UTC or Etc/GMT", ocean.Timezone)
	}
	assertCompleteChart(t, ocean)
}

func TestParseLocal(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "hours and minutes",
			date:  "1990-06-15",
			clock: "14:30",
			want:  time.Date(1990, 6, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "with seconds",
			date:  "1990-06-15",
			clock: "14:30:45",
			want:  time.Date(1990, 6, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:    "hour out of range",
			date:    "1990-06-15",
			clock:   "25:99",
			wantErr: true,
		},
		{
			name:    "slashed date",
			date:    "15/06/1990",
			clock:   "14:30",
			wantErr: true,
		},
		{
			name:    "12 hour clock",
			date:    "1990-06-15",
			clock:   "2:30 PM",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocal(tt.date, tt.clock)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimestamp) {
					t.Errorf("ParseLocal() error = %v, want %v", err, ErrInvalidTimestamp)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocal() unexpected error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseLocal() = %v, want %v", got, tt.want)
			}
		})
	}
}
