package admin

import (
	"context"
	"errors"

	"artist-site/internal/domain/access"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrUnknownEntity = errors.New("admin: unknown entity")

// Authorizer is the access check run before every operation.
type Authorizer interface {
	Require(ctx context.Context, sess access.Session) error
}

// EntityInfo is the dashboard view of one table.
type EntityInfo struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Surface is the generic CRUD over every content table. Each method
// checks the session before it looks at anything else.
type Surface struct {
	db       *gorm.DB
	guard    Authorizer
	order    []Entity
	entities map[string]Entity
}

func NewSurface(db *gorm.DB, guard Authorizer) *Surface {
	s := &Surface{db: db, guard: guard, order: entities(), entities: map[string]Entity{}}
	for _, e := range s.order {
		s.entities[e.Name()] = e
	}
	return s
}

func (s *Surface) entity(ctx context.Context, sess access.Session, name string) (Entity, error) {
	if err := s.guard.Require(ctx, sess); err != nil {
		return nil, err
	}
	e, ok := s.entities[name]
	if !ok {
		return nil, ErrUnknownEntity
	}
	return e, nil
}

func (s *Surface) Entities(ctx context.Context, sess access.Session) ([]EntityInfo, error) {
	if err := s.guard.Require(ctx, sess); err != nil {
		return nil, err
	}
	out := make([]EntityInfo, 0, len(s.order))
	for _, e := range s.order {
		out = append(out, EntityInfo{Name: e.Name(), Fields: e.Fields()})
	}
	return out, nil
}

func (s *Surface) List(ctx context.Context, sess access.Session, name string) (any, error) {
	e, err := s.entity(ctx, sess, name)
	if err != nil {
		return nil, err
	}
	return e.list(ctx, s.db)
}

func (s *Surface) Read(ctx context.Context, sess access.Session, name string, id uint) (any, error) {
	e, err := s.entity(ctx, sess, name)
	if err != nil {
		return nil, err
	}
	return e.read(ctx, s.db, id)
}

func (s *Surface) Create(ctx context.Context, sess access.Session, name string, input map[string]any) (any, error) {
	e, err := s.entity(ctx, sess, name)
	if err != nil {
		return nil, err
	}
	rec, err := e.create(ctx, s.db, input)
	if err != nil {
		return nil, err
	}
	log.Info().Str("entity", name).Msg("admin: record created")
	return rec, nil
}

func (s *Surface) Update(ctx context.Context, sess access.Session, name string, id uint, input map[string]any) (any, error) {
	e, err := s.entity(ctx, sess, name)
	if err != nil {
		return nil, err
	}
	rec, err := e.update(ctx, s.db, id, input)
	if err != nil {
		return nil, err
	}
	log.Info().Str("entity", name).Uint("id", id).Msg("admin: record updated")
	return rec, nil
}

func (s *Surface) Delete(ctx context.Context, sess access.Session, name string, id uint) error {
	e, err := s.entity(ctx, sess, name)
	if err != nil {
		return err
	}
	if err := e.remove(ctx, s.db, id); err != nil {
		return err
	}
	log.Info().Str("entity", name).Uint("id", id).Msg("admin: record deleted")
	return nil
}
