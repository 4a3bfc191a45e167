package admin

import (
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/microcosm-cc/bluemonday"
)

// Kind tells the decoder how to coerce a submitted value.
type Kind int

const (
	Text     Kind = iota // single line
	LongText             // unbounded plain text
	HTML                 // rich text, sanitized on write
	Time                 // timestamp
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case LongText:
		return "long_text"
	case HTML:
		return "html"
	case Time:
		return "time"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Field describes one editable column. Name is both the JSON key and the
// column name. Optional fields accept null; NonBlank fields reject "".
type Field struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Optional bool   `json:"optional"`
	NonBlank bool   `json:"non_blank,omitempty"`
	MaxLen   int    `json:"max_len,omitempty"`
}

// ValidationError maps offending field names to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var richText = bluemonday.UGCPolicy()

// decode turns submitted values into column values. With partial unset
// (create) every required field must be present.
func decode(fields []Field, input map[string]any, partial bool) (map[string]any, error) {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	out := make(map[string]any, len(input))
	errs := map[string]string{}

	for name, raw := range input {
		f, ok := byName[name]
		if !ok {
			errs[name] = "unknown field"
			continue
		}
		v, err := coerce(f, raw)
		if err != nil {
			errs[name] = err.Error()
			continue
		}
		out[name] = v
	}

	if !partial {
		for _, f := range fields {
			if _, ok := input[f.Name]; !ok && !f.Optional {
				errs[f.Name] = "is required"
			}
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	return out, nil
}

func coerce(f Field, raw any) (any, error) {
	if raw == nil {
		if f.Optional {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot be null")
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("must be a string")
	}
	if f.Optional && strings.TrimSpace(s) == "" {
		return nil, nil
	}

	switch f.Kind {
	case Time:
		s = strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				// stored as text on sqlite, so a single offset keeps ORDER BY chronological
				return t.UTC(), nil
			}
		}
		return nil, fmt.Errorf("must be a timestamp (YYYY-MM-DD[ HH:MM] or RFC 3339)")
	case HTML:
		s = richText.Sanitize(s)
	}

	var rules []validation.Rule
	if f.NonBlank {
		rules = append(rules, validation.Required)
	}
	if f.MaxLen > 0 {
		rules = append(rules, validation.RuneLength(0, f.MaxLen))
	}
	if err := validation.Validate(s, rules...); err != nil {
		return nil, err
	}
	return s, nil
}
