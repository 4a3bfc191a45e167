package content

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed is the YAML document accepted by the `seed` command.
//
//	biographies:
//	  - {title: English, language_slug: en, body: "..."}
//	repertoire:
//	  solo:
//	    - {composer: Bach, title: Partita No. 2}
//	events:
//	  - {date: 2025-01-01T19:30:00Z, location: Wigmore Hall, description: Recital}
type Seed struct {
	Biographies []SeedBiography          `yaml:"biographies"`
	Repertoire  map[Category][]SeedPiece `yaml:"repertoire"`
	Events      []SeedEvent              `yaml:"events"`
	Photos      []SeedLink               `yaml:"photos"`
	Videos      []SeedLink               `yaml:"videos"`
	Contacts    []SeedContact            `yaml:"contacts"`
}

type SeedBiography struct {
	Title        string `yaml:"title"`
	Body         string `yaml:"body"`
	LanguageSlug string `yaml:"language_slug"`
}

type SeedPiece struct {
	Composer string `yaml:"composer"`
	Title    string `yaml:"title"`
}

type SeedEvent struct {
	Date        *time.Time `yaml:"date"`
	Location    string     `yaml:"location"`
	Description string     `yaml:"description"`
	TicketLink  *string    `yaml:"ticket_link"`
}

type SeedLink struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type SeedContact struct {
	ContactPerson    string  `yaml:"contact_person"`
	Phone            string  `yaml:"phone"`
	PhoneOptional    *string `yaml:"phone_optional"`
	Email            string  `yaml:"email"`
	EmailOptional    *string `yaml:"email_optional"`
	WhatsappOptional *string `yaml:"whatsapp_optional"`
}

func LoadSeed(r io.Reader) (*Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for c := range s.Repertoire {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	return &s, nil
}

// Apply inserts the whole document in one transaction. Biographies go
// first so that on an empty store the first one becomes the default.
func (s *Seed) Apply(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range s.Biographies {
			rec := Biography{Title: b.Title, Body: b.Body, LanguageSlug: b.LanguageSlug}
			if err := NewStore[Biography](tx).Insert(ctx, &rec); err != nil {
				return fmt.Errorf("biography %q: %w", b.LanguageSlug, err)
			}
		}
		for _, c := range Categories {
			for _, p := range s.Repertoire[c] {
				rec := RepertoireEntry{Category: c, Composer: p.Composer, Title: p.Title}
				if err := NewStore[RepertoireEntry](tx).Insert(ctx, &rec); err != nil {
					return fmt.Errorf("repertoire %s: %w", c, err)
				}
			}
		}
		for _, e := range s.Events {
			rec := Event{Date: utc(e.Date), Location: e.Location, Description: e.Description, TicketLink: e.TicketLink}
			if err := NewStore[Event](tx).Insert(ctx, &rec); err != nil {
				return fmt.Errorf("event: %w", err)
			}
		}
		for _, p := range s.Photos {
			if err := NewStore[PhotoLink](tx).Insert(ctx, &PhotoLink{Title: p.Title, URL: p.URL}); err != nil {
				return fmt.Errorf("photo: %w", err)
			}
		}
		for _, v := range s.Videos {
			if err := NewStore[VideoLink](tx).Insert(ctx, &VideoLink{Title: v.Title, URL: v.URL}); err != nil {
				return fmt.Errorf("video: %w", err)
			}
		}
		for _, c := range s.Contacts {
			rec := Contact{
				ContactPerson:    c.ContactPerson,
				Phone:            c.Phone,
				PhoneOptional:    c.PhoneOptional,
				Email:            c.Email,
				EmailOptional:    c.EmailOptional,
				WhatsappOptional: c.WhatsappOptional,
			}
			if err := NewStore[Contact](tx).Insert(ctx, &rec); err != nil {
				return fmt.Errorf("contact: %w", err)
			}
		}
		return nil
	})
}

// utc keeps stored dates in one offset so text-backed columns sort by time.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
