package search

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SectorConsulting = "CONSULTING"
	SectorFinance    = "FINANCE"

	DefaultPage  = 1
	DefaultCount = 20
	MaxCount     = 200
)

// ValidationError reports a single invalid filter field. It is a hard
// failure: the offending parse result must never be cached.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter field %s: %s", e.Field, e.Reason)
}

// Filters is the structured, validated set of search parameters extracted
// from a natural-language query.
type Filters struct {
	Name              string `json:"name,omitempty"`
	CurrentCompany    string `json:"current_company,omitempty"`
	PreviousCompany   string `json:"previous_company,omitempty"`
	Sector            string `json:"sector,omitempty"`
	Title             string `json:"title,omitempty"`
	Role              string `json:"role,omitempty"`
	School            string `json:"school,omitempty"`
	UndergraduateYear int    `json:"undergraduate_year,omitempty"`
	City              string `json:"city,omitempty"`
	Page              int    `json:"page"`
	Count             int    `json:"count"`
}

// Default returns an empty filter set with default pagination, the
// fallback used when LLM parsing is unavailable or fails.
func Default() Filters {
	return Filters{Page: DefaultPage, Count: DefaultCount}
}

// NormalizeRaw cleans a raw slot mapping as returned by the LLM: string
// values are trimmed, empty and nil values dropped, page coerced to an
// integer defaulting to 1 (also when falsy), and count coerced to an
// integer defaulting to 20 and clamped into [1, 200].
func NormalizeRaw(raw map[string]any) map[string]any {
	cleaned := make(map[string]any, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			v = strings.TrimSpace(s)
		}
		if v == nil || v == "" {
			continue
		}
		cleaned[k] = v
	}

	page, err := coerceInt(cleaned["page"])
	if err != nil || page == 0 {
		page = DefaultPage
	}
	cleaned["page"] = page

	count := DefaultCount
	if v, ok := cleaned["count"]; ok {
		if n, err := coerceInt(v); err == nil {
			count = n
		}
	}
	if count < 1 {
		count = 1
	}
	if count > MaxCount {
		count = MaxCount
	}
	cleaned["count"] = count

	return cleaned
}

// FromRaw normalizes and validates a raw slot mapping into Filters.
// Unknown keys are ignored; an invalid sector or a non-integer numeric
// field yields a ValidationError.
func FromRaw(raw map[string]any) (Filters, error) {
	cleaned := NormalizeRaw(raw)

	f := Filters{
		Name:            stringSlot(cleaned, "name"),
		CurrentCompany:  stringSlot(cleaned, "current_company"),
		PreviousCompany: stringSlot(cleaned, "previous_company"),
		Title:           stringSlot(cleaned, "title"),
		Role:            stringSlot(cleaned, "role"),
		School:          stringSlot(cleaned, "school"),
		City:            stringSlot(cleaned, "city"),
	}

	if v, ok := cleaned["sector"]; ok {
		sector, err := normalizeSector(v)
		if err != nil {
			return Filters{}, err
		}
		f.Sector = sector
	}

	if v, ok := cleaned["undergraduate_year"]; ok {
		year, err := coerceInt(v)
		if err != nil {
			return Filters{}, &ValidationError{Field: "undergraduate_year", Reason: "must be an integer"}
		}
		f.UndergraduateYear = year
	}

	f.Page, _ = coerceInt(cleaned["page"])
	f.Count, _ = coerceInt(cleaned["count"])

	return f, nil
}

func normalizeSector(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: "sector", Reason: "must be a string"}
	}
	sector := strings.ToUpper(strings.TrimSpace(s))
	if sector != SectorConsulting && sector != SectorFinance {
		return "", &ValidationError{Field: "sector", Reason: "must be CONSULTING or FINANCE"}
	}
	return sector, nil
}

func stringSlot(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// coerceInt converts the numeric representations JSON decoding can produce
// (float64, json.Number-style strings, ints) into an int.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to int", v)
	}
}
