// Package fake generates plausible fake values for seeders. It wraps
// gofakeit behind a small field-template vocabulary so plan files can
// describe record shapes declaratively, and it is seeded explicitly so a
// run is reproducible from its seed.
//
// The execution engine never looks inside this package; it is a helper for
// seeder bodies only.
package fake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Source produces fake values from a deterministic stream. Two Sources
// built with the same seed yield the same sequence of values.
type Source struct {
	f *gofakeit.Faker
}

// NewSource creates a source seeded with seed. Seed 0 asks gofakeit for
// cryptographic randomness; any other value gives a reproducible stream.
func NewSource(seed uint64) *Source {
	return &Source{f: gofakeit.New(seed)}
}

// Value produces one fake value for a field template. Supported templates:
//
//	name, first_name, last_name, username, email, phone, company, city,
//	country, url, word, sentence, uuid, date, bool,
//	int:min,max and float:min,max (inclusive ranges).
//
// Unknown templates are an error so typos in plan files surface instead of
// silently seeding garbage.
func (s *Source) Value(template string) (any, error) {
	kind, arg, _ := strings.Cut(template, ":")
	switch kind {
	case "name":
		return s.f.Name(), nil
	case "first_name":
		return s.f.FirstName(), nil
	case "last_name":
		return s.f.LastName(), nil
	case "username":
		return s.f.Username(), nil
	case "email":
		return s.f.Email(), nil
	case "phone":
		return s.f.Phone(), nil
	case "company":
		return s.f.Company(), nil
	case "city":
		return s.f.City(), nil
	case "country":
		return s.f.Country(), nil
	case "url":
		return s.f.URL(), nil
	case "word":
		return s.f.Word(), nil
	case "sentence":
		return s.f.Sentence(8), nil
	case "uuid":
		return s.f.UUID(), nil
	case "date":
		return s.f.Date(), nil
	case "bool":
		return s.f.Bool(), nil
	case "int":
		lo, hi, err := parseRange(arg)
		if err != nil {
			return nil, fmt.Errorf("field template %q: %w", template, err)
		}
		return s.f.IntRange(int(lo), int(hi)), nil
	case "float":
		lo, hi, err := parseRange(arg)
		if err != nil {
			return nil, fmt.Errorf("field template %q: %w", template, err)
		}
		return s.f.Float64Range(lo, hi), nil
	default:
		return nil, fmt.Errorf("unknown field template %q", template)
	}
}

// Record produces one record from a field-name → template mapping.
func (s *Source) Record(fields map[string]string) (map[string]any, error) {
	record := make(map[string]any, len(fields))
	for field, template := range fields {
		v, err := s.Value(template)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		record[field] = v
	}
	return record, nil
}

// Records produces n records from the same field mapping.
func (s *Source) Records(n int, fields map[string]string) ([]map[string]any, error) {
	records := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		r, err := s.Record(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func parseRange(arg string) (float64, float64, error) {
	loStr, hiStr, ok := strings.Cut(arg, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want min,max, got %q", arg)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(loStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad min %q", loStr)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(hiStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad max %q", hiStr)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("min %v exceeds max %v", lo, hi)
	}
	return lo, hi, nil
}
