package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/yuin/goldmark"

	"teenevents/internal/domain"
)

// highlightUpcomingLimit caps how many upcoming events the home page shows.
const highlightUpcomingLimit = 3

type catalogService struct {
	eventRepo      domain.EventRepository
	markdown       goldmark.Markdown
	contextTimeout time.Duration
}

// NewCatalogService returns the public read-only catalog service.
func NewCatalogService(eventRepo domain.EventRepository, timeout time.Duration) domain.CatalogService {
	return &catalogService{
		eventRepo:      eventRepo,
		markdown:       goldmark.New(),
		contextTimeout: timeout,
	}
}

// Catalog returns all events partitioned into the three phase buckets. The
// phase filter runs in the query, so the buckets are disjoint by construction
// and each event appears in exactly one of them.
func (s *catalogService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	catalog := &domain.Catalog{}
	for _, bucket := range []struct {
		phase domain.Phase
		dest  *[]*domain.CatalogEvent
	}{
		{domain.PhaseUpcoming, &catalog.Upcoming},
		{domain.PhaseCurrent, &catalog.Current},
		{domain.PhasePast, &catalog.Past},
	} {
		events, err := s.eventRepo.ListByPhase(ctx, bucket.phase, false, 0)
		if err != nil {
			return nil, fmt.Errorf("list %s events: %w", bucket.phase, err)
		}
		projected, err := s.project(events)
		if err != nil {
			return nil, err
		}
		*bucket.dest = projected
	}
	return catalog, nil
}

// Highlight returns the current event plus up to three soonest upcoming
// events. When more than one event is in phase current, the most recent by
// date wins.
func (s *catalogService) Highlight(ctx context.Context) (*domain.Highlight, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.ListByPhase(ctx, domain.PhaseCurrent, false, 1)
	if err != nil {
		return nil, fmt.Errorf("get current event: %w", err)
	}
	upcoming, err := s.eventRepo.ListByPhase(ctx, domain.PhaseUpcoming, true, highlightUpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	highlight := &domain.Highlight{}
	if len(current) > 0 {
		ce, err := s.projectOne(current[0])
		if err != nil {
			return nil, err
		}
		highlight.Current = ce
	}
	highlight.Upcoming, err = s.project(upcoming)
	if err != nil {
		return nil, err
	}
	return highlight, nil
}

func (s *catalogService) project(events []*domain.Event) ([]*domain.CatalogEvent, error) {
	out := make([]*domain.CatalogEvent, 0, len(events))
	for _, e := range events {
		ce, err := s.projectOne(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}

func (s *catalogService) projectOne(e *domain.Event) (*domain.CatalogEvent, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(e.Description), &buf); err != nil {
		return nil, fmt.Errorf("render description for event %s: %w", e.ID, err)
	}
	return &domain.CatalogEvent{Event: e, DescriptionHTML: buf.String()}, nil
}
