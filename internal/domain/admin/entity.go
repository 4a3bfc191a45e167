package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"artist-site/internal/domain/content"

	"gorm.io/gorm"
)

// Entity is one administrable table.
type Entity interface {
	Name() string
	Fields() []Field

	list(ctx context.Context, db *gorm.DB) (any, error)
	read(ctx context.Context, db *gorm.DB, id uint) (any, error)
	create(ctx context.Context, db *gorm.DB, input map[string]any) (any, error)
	update(ctx context.Context, db *gorm.DB, id uint, input map[string]any) (any, error)
	remove(ctx context.Context, db *gorm.DB, id uint) error
}

type descriptor[T any] struct {
	name   string
	fields []Field
	scopes []func(*gorm.DB) *gorm.DB
	stamp  func(*T) // fills columns that are fixed by the descriptor
}

func (d *descriptor[T]) Name() string    { return d.name }
func (d *descriptor[T]) Fields() []Field { return d.fields }

func (d *descriptor[T]) store(db *gorm.DB) *content.Store[T] {
	return content.NewStore[T](db, d.scopes...)
}

func (d *descriptor[T]) list(ctx context.Context, db *gorm.DB) (any, error) {
	return d.store(db).List(ctx)
}

func (d *descriptor[T]) read(ctx context.Context, db *gorm.DB, id uint) (any, error) {
	return d.store(db).Get(ctx, id)
}

func (d *descriptor[T]) create(ctx context.Context, db *gorm.DB, input map[string]any) (any, error) {
	values, err := decode(d.fields, input, false)
	if err != nil {
		return nil, err
	}
	// json tags match column names, so the decoded map fills T directly
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.name, err)
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.name, err)
	}
	if d.stamp != nil {
		d.stamp(&rec)
	}
	if err := d.store(db).Insert(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *descriptor[T]) update(ctx context.Context, db *gorm.DB, id uint, input map[string]any) (any, error) {
	values, err := decode(d.fields, input, true)
	if err != nil {
		return nil, err
	}
	return d.store(db).Update(ctx, id, values)
}

func (d *descriptor[T]) remove(ctx context.Context, db *gorm.DB, id uint) error {
	return d.store(db).Delete(ctx, id)
}

func repertoire(name string, c content.Category) Entity {
	return &descriptor[content.RepertoireEntry]{
		name: name,
		fields: []Field{
			{Name: "composer", Kind: Text, MaxLen: 100},
			{Name: "title", Kind: LongText},
		},
		scopes: []func(*gorm.DB) *gorm.DB{content.InCategory(c)},
		stamp:  func(r *content.RepertoireEntry) { r.Category = c },
	}
}

func links[T any](name string) Entity {
	return &descriptor[T]{
		name: name,
		fields: []Field{
			{Name: "title", Kind: Text, MaxLen: 100},
			{Name: "url", Kind: LongText},
		},
	}
}

// entities lists every administrable table in dashboard order.
func entities() []Entity {
	return []Entity{
		&descriptor[content.Biography]{
			name: "biographies",
			fields: []Field{
				{Name: "title", Kind: Text, NonBlank: true, MaxLen: 50},
				{Name: "body", Kind: HTML},
				{Name: "language_slug", Kind: Text, NonBlank: true, MaxLen: 10},
			},
		},
		repertoire("repertoire-solo", content.CategorySolo),
		repertoire("repertoire-with-piano", content.CategoryWithPiano),
		repertoire("repertoire-with-orchestra", content.CategoryWithOrchestra),
		repertoire("repertoire-chamber", content.CategoryChamber),
		&descriptor[content.Event]{
			name: "events",
			fields: []Field{
				{Name: "date", Kind: Time, Optional: true},
				{Name: "location", Kind: Text, MaxLen: 400},
				{Name: "description", Kind: HTML},
				{Name: "ticket_link", Kind: Text, Optional: true, MaxLen: 200},
			},
		},
		links[content.VideoLink]("videos"),
		links[content.PhotoLink]("photos"),
		&descriptor[content.Contact]{
			name: "contacts",
			fields: []Field{
				{Name: "contact_person", Kind: Text, MaxLen: 200},
				{Name: "phone", Kind: Text, MaxLen: 50},
				{Name: "phone_optional", Kind: Text, Optional: true, MaxLen: 50},
				{Name: "email", Kind: Text, MaxLen: 100},
				{Name: "email_optional", Kind: Text, Optional: true, MaxLen: 100},
				{Name: "whatsapp_optional", Kind: Text, Optional: true, MaxLen: 30},
			},
		},
	}
}
