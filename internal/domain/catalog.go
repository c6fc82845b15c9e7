package domain

import "context"

// CatalogEvent is an Event projected for public pages, with the markdown
// description rendered to HTML.
// swagger:model CatalogEvent
type CatalogEvent struct {
	*Event
	DescriptionHTML string `json:"description_html"`
}

// Catalog holds all events partitioned into the three lifecycle buckets.
// Every event appears in exactly one bucket, determined solely by its phase.
// swagger:model Catalog
type Catalog struct {
	Upcoming []*CatalogEvent `json:"upcoming"`
	Current  []*CatalogEvent `json:"current"`
	Past     []*CatalogEvent `json:"past"`
}

// Highlight is the home page projection: the current event (nil when none)
// and up to three soonest upcoming events.
// swagger:model Highlight
type Highlight struct {
	Current  *CatalogEvent   `json:"current"`
	Upcoming []*CatalogEvent `json:"upcoming"`
}

// CatalogService defines the public read-only event listing.
type CatalogService interface {
	Catalog(ctx context.Context) (*Catalog, error)
	Highlight(ctx context.Context) (*Highlight, error)
}
