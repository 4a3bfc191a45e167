package content

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is the per-entity table keyed by the generated id.
// Scopes, when given, restrict every read, update and delete.
//
// IMPORTANT: pass db in, do NOT import artist-site/database here (avoids import cycle).
type Store[T any] struct {
	db     *gorm.DB
	scopes []func(*gorm.DB) *gorm.DB
}

func NewStore[T any](db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) *Store[T] {
	return &Store[T]{db: db, scopes: scopes}
}

func (s *Store[T]) query(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Scopes(s.scopes...)
}

func (s *Store[T]) Insert(ctx context.Context, rec *T) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := s.query(ctx, s.db).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// List returns records in insertion (id) order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := s.query(ctx, s.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Update applies column values to one record inside a transaction and
// returns the stored result. An absent id leaves the table untouched.
func (s *Store[T]) Update(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.query(ctx, tx).First(&rec, id).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&rec).Updates(fields).Error; err != nil {
				return err
			}
		}
		return s.query(ctx, tx).First(&rec, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.query(ctx, s.db).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
