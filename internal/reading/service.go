package reading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cosmicmatch/internal/ephemeris"
	"cosmicmatch/internal/location"
	"cosmicmatch/internal/prompt"
	"cosmicmatch/internal/render"
	"cosmicmatch/internal/store"
	"cosmicmatch/internal/types"
)

var (
	// ErrInvalidRequest is returned when birth details are incomplete
	ErrInvalidRequest = errors.New("invalid reading request")
	// ErrReportNotFound is returned for unknown or expired report ids
	ErrReportNotFound = errors.New("report not found")
	// ErrGenerationFailed is returned when the text generator fails
	ErrGenerationFailed = errors.New("reading generation failed")
)

// Service creates and retrieves readings
type Service interface {
	// Chart resolves a birthplace and computes its chart
	Chart(ctx context.Context, details types.BirthDetails) (*SubjectChart, error)
	// Create generates, renders and stores a new reading
	Create(ctx context.Context, req Request) (*Report, error)
	// Get returns a stored reading, including its rendered documents
	Get(ctx context.Context, id string) (*Report, error)
	// Health reports whether the report store is reachable
	Health(ctx context.Context) error
}

// ChartResolver computes a chart for a local birth time and place
type ChartResolver interface {
	Compute(date, clock string, latitude, longitude float64) (*ephemeris.Result, error)
}

// PlaceResolver geocodes birthplaces
type PlaceResolver interface {
	ResolvePlace(ctx context.Context, query string) (*types.Place, error)
	DescribeCoords(ctx context.Context, latitude, longitude float64) (*types.Place, error)
}

// TextGenerator produces the reading text
type TextGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// DocumentRenderer renders the reading text
type DocumentRenderer interface {
	HTML(doc render.Document) ([]byte, error)
	PDF(doc render.Document) ([]byte, error)
}

type readingService struct {
	charts    ChartResolver
	places    PlaceResolver
	generator TextGenerator
	renderer  DocumentRenderer
	reports   store.Store
	ttl       time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewReadingService wires a reading service; reports are kept for ttl
func NewReadingService(
	charts ChartResolver,
	places PlaceResolver,
	generator TextGenerator,
	renderer DocumentRenderer,
	reports store.Store,
	ttl time.Duration,
	logger *slog.Logger,
) Service {
	return &readingService{
		charts:    charts,
		places:    places,
		generator: generator,
		renderer:  renderer,
		reports:   reports,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger.With("component", "reading-service"),
	}
}

func (s *readingService) Chart(ctx context.Context, details types.BirthDetails) (*SubjectChart, error) {
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	place, err := s.resolvePlace(ctx, details)
	if err != nil {
		return nil, err
	}

	chart, err := s.charts.Compute(details.Date, details.Time, place.Coordinates.Latitude, place.Coordinates.Longitude)
	if err != nil {
		return nil, err
	}

	return &SubjectChart{
		Name:      strings.TrimSpace(details.Name),
		BirthDate: details.Date,
		BirthTime: details.Time,
		Place:     *place,
		Chart:     chart,
	}, nil
}

func (s *readingService) Create(ctx context.Context, req Request) (*Report, error) {
	mode := prompt.Natal
	if req.Partner != nil {
		mode = prompt.Compatibility
	}

	report, err := s.create(ctx, req, mode)
	readingsTotal.WithLabelValues(string(mode), outcome(err)).Inc()
	if err != nil {
		s.logger.Error("failed to create reading", "mode", mode, "error", err)
		return nil, err
	}

	s.logger.Info("created reading",
		"id", report.ID,
		"mode", mode,
		"expires_at", report.ExpiresAt,
	)
	return report, nil
}

func (s *readingService) create(ctx context.Context, req Request, mode prompt.Mode) (*Report, error) {
	self, partner, err := s.subjectCharts(ctx, req)
	if err != nil {
		return nil, err
	}

	in := prompt.Input{
		Self:     toPromptSubject(self),
		Focus:    req.Focus,
		Question: req.Question,
		Language: req.Language,
	}
	if partner != nil {
		p := toPromptSubject(partner)
		in.Partner = &p
	}
	msgs, err := prompt.Build(in)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, msgs.System, msgs.User)
	generationDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	now := s.now().UTC()
	report := &Report{
		ID:        uuid.NewString(),
		Mode:      mode,
		Title:     title(req),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
		Self:      *self,
		Partner:   partner,
		Text:      text,
	}

	doc := render.Document{
		Title:    report.Title,
		Subtitle: subtitle(self, partner),
		Body:     text,
		Created:  now,
	}
	if report.HTML, err = s.renderer.HTML(doc); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}
	if report.PDF, err = s.renderer.PDF(doc); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	data, err := json.Marshal(record{Report: report, HTML: report.HTML, PDF: report.PDF})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	if err := s.reports.Put(ctx, report.ID, data, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	return report, nil
}

// subjectCharts computes both charts in parallel
func (s *readingService) subjectCharts(ctx context.Context, req Request) (*SubjectChart, *SubjectChart, error) {
	if err := validateDetails(req.Self); err != nil {
		return nil, nil, err
	}
	if req.Partner == nil {
		self, err := s.Chart(ctx, req.Self)
		return self, nil, err
	}
	if err := validateDetails(*req.Partner); err != nil {
		return nil, nil, fmt.Errorf("partner: %w", err)
	}

	var (
		wg         sync.WaitGroup
		self       *SubjectChart
		partner    *SubjectChart
		selfErr    error
		partnerErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		self, selfErr = s.Chart(ctx, req.Self)
	}()
	go func() {
		defer wg.Done()
		partner, partnerErr = s.Chart(ctx, *req.Partner)
		if partnerErr != nil {
			partnerErr = fmt.Errorf("partner: %w", partnerErr)
		}
	}()
	wg.Wait()

	if selfErr != nil {
		return nil, nil, selfErr
	}
	if partnerErr != nil {
		return nil, nil, partnerErr
	}
	return self, partner, nil
}

func (s *readingService) Get(ctx context.Context, id string) (*Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrReportNotFound, id)
	}

	data, err := s.reports.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if rec.Report == nil {
		return nil, errors.New("failed to decode report: empty record")
	}
	rec.Report.HTML = rec.HTML
	rec.Report.PDF = rec.PDF
	return rec.Report, nil
}

func (s *readingService) Health(ctx context.Context) error {
	if err := store.Health(ctx, s.reports); err != nil {
		return fmt.Errorf("report store unavailable: %w", err)
	}
	return nil
}

// resolvePlace uses supplied coordinates when present, naming them from the
// given place or a reverse lookup; otherwise it geocodes the place name
func (s *readingService) resolvePlace(ctx context.Context, details types.BirthDetails) (*types.Place, error) {
	name := strings.TrimSpace(details.Place)
	if details.HasCoords() {
		coords := details.Coords()
		if name != "" {
			return &types.Place{
				Coordinates: coords,
				Location:    types.LocationInfo{Name: name, DisplayName: name},
			}, nil
		}
		return s.places.DescribeCoords(ctx, coords.Latitude, coords.Longitude)
	}
	return s.places.ResolvePlace(ctx, name)
}

func validateDetails(d types.BirthDetails) error {
	if strings.TrimSpace(d.Date) == "" {
		return fmt.Errorf("%w: birth_date is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(d.Time) == "" {
		return fmt.Errorf("%w: birth_time is required", ErrInvalidRequest)
	}
	if (d.Latitude == nil) != (d.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalidRequest)
	}
	if d.HasCoords() {
		if err := d.Coords().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return nil
	}
	if strings.TrimSpace(d.Place) == "" {
		return fmt.Errorf("%w: birth_place or coordinates are required", ErrInvalidRequest)
	}
	return nil
}

func toPromptSubject(c *SubjectChart) prompt.Subject {
	return prompt.Subject{
		Name:      c.Name,
		BirthDate: c.BirthDate,
		BirthTime: c.BirthTime,
		Place:     c.Place.Location.Name,
		Chart:     c.Chart,
	}
}

func title(req Request) string {
	if req.Partner != nil {
		return fmt.Sprintf("Compatibility Reading: %s & %s", req.Self.DisplayName("You"), req.Partner.DisplayName("Partner"))
	}
	return "Natal Chart Reading for " + req.Self.DisplayName("You")
}

func subtitle(self, partner *SubjectChart) string {
	describe := func(c *SubjectChart) string {
		s := fmt.Sprintf("%s %s", c.BirthDate, c.BirthTime)
		if c.Place.Location.Name != "" {
			s += ", " + c.Place.Location.Name
		}
		return s
	}
	if partner != nil {
		return describe(self) + " · " + describe(partner)
	}
	return "Born " + describe(self)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ephemeris.ErrInvalidTimestamp),
		errors.Is(err, location.ErrPlaceNotFound),
		errors.Is(err, types.ErrInvalidLatitude),
		errors.Is(err, types.ErrInvalidLongitude):
		return outcomeInvalid
	case errors.Is(err, ErrGenerationFailed):
		return outcomeGenerationError
	default:
		return outcomeError
	}
}
