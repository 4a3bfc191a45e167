package content

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
)

// DefaultBiographyID is the biography shown on /bio.
const DefaultBiographyID = 1

// Queries holds the read-only accessors used by the public pages.
type Queries struct {
	db *gorm.DB
}

func NewQueries(db *gorm.DB) *Queries {
	return &Queries{db: db}
}

func (q *Queries) AllBiographies(ctx context.Context) ([]Biography, error) {
	return NewStore[Biography](q.db).List(ctx)
}

func (q *Queries) BiographyBySlug(ctx context.Context, slug string) (*Biography, error) {
	var bio Biography
	if err := q.db.WithContext(ctx).First(&bio, "language_slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &bio, nil
}

func (q *Queries) DefaultBiography(ctx context.Context) (*Biography, error) {
	bio, err := NewStore[Biography](q.db).Get(ctx, DefaultBiographyID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrMisconfiguredContent
	}
	return bio, err
}

// Repertoire lists one category ordered by composer. The comparison is
// byte-wise so it does not depend on the database collation; equal
// composers keep their insertion order.
func (q *Queries) Repertoire(ctx context.Context, c Category) ([]RepertoireEntry, error) {
	if !c.Valid() {
		return nil, ErrUnknownCategory
	}
	entries, err := NewStore[RepertoireEntry](q.db, InCategory(c)).List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Composer < entries[j].Composer
	})
	return entries, nil
}

// Events lists the newest events first; undated events go last.
func (q *Queries) Events(ctx context.Context) ([]Event, error) {
	events := []Event{}
	err := q.db.WithContext(ctx).
		Order("date IS NULL ASC").
		Order("date DESC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (q *Queries) Media(ctx context.Context) (photos []PhotoLink, videos []VideoLink, err error) {
	if photos, err = NewStore[PhotoLink](q.db).List(ctx); err != nil {
		return nil, nil, err
	}
	if videos, err = NewStore[VideoLink](q.db).List(ctx); err != nil {
		return nil, nil, err
	}
	return photos, videos, nil
}

func (q *Queries) Contacts(ctx context.Context) ([]Contact, error) {
	return NewStore[Contact](q.db).List(ctx)
}
