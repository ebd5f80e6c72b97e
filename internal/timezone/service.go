package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// ErrNotFound is returned when no zone polygon contains the coordinates
var ErrNotFound = errors.New("timezone not found")

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service. The finder
// is read-only after construction and safe for concurrent use.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates,
// like "America/Denver" or "Europe/London"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("%w: coordinates out of range lat=%f, lon=%f", ErrNotFound, latitude, longitude)
	}

	// tzf takes longitude first
	tz := s.finder.GetTimezoneName(longitude, latitude)
	if tz == "" {
		return "", fmt.Errorf("%w: lat=%f, lon=%f", ErrNotFound, latitude, longitude)
	}

	return tz, nil
}
