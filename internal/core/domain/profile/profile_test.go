package profile_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/recruitu/backend/internal/core/domain/profile"
)

func TestDate_UnmarshalVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want profile.Date
	}{
		{`"2019-05"`, "2019-05"},
		{`2019`, "2019"},
		{`{"year": 2019, "month": 5}`, "2019"},
		{`{"month": 5}`, ""},
		{`null`, ""},
	}
	for _, tc := range cases {
		var d profile.Date
		if err := json.Unmarshal([]byte(tc.raw), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if d != tc.want {
			t.Fatalf("unmarshal %s: got %q want %q", tc.raw, d, tc.want)
		}
	}
}

func TestCertification_UnmarshalVariants(t *testing.T) {
	var c profile.Certification
	if err := json.Unmarshal([]byte(`"AWS Solutions Architect"`), &c); err != nil {
		t.Fatalf("unmarshal string cert: %v", err)
	}
	if c.Name != "AWS Solutions Architect" {
		t.Fatalf("unexpected name %q", c.Name)
	}

	if err := json.Unmarshal([]byte(`{"name": "CFA", "authority": "CFA Institute"}`), &c); err != nil {
		t.Fatalf("unmarshal object cert: %v", err)
	}
	if c.Name != "CFA" {
		t.Fatalf("unexpected name %q", c.Name)
	}
}

func TestIsEmpty(t *testing.T) {
	var sr *profile.SearchResult
	if !sr.IsEmpty() {
		t.Fatalf("nil search result should be empty")
	}
	if !(&profile.SearchResult{}).IsEmpty() {
		t.Fatalf("zero search result should be empty")
	}
	if (&profile.SearchResult{FullName: "Al"}).IsEmpty() {
		t.Fatalf("populated search result should not be empty")
	}

	var d *profile.Detailed
	if !d.IsEmpty() {
		t.Fatalf("nil detailed profile should be empty")
	}
	if (&profile.Detailed{Occupation: "Analyst"}).IsEmpty() {
		t.Fatalf("populated detailed profile should not be empty")
	}
}

func TestFilterSearchResult_DropsSensitiveFields(t *testing.T) {
	p := &profile.SearchResult{
		ID:                "u1",
		FullName:          "Al",
		Title:             "Consultant",
		CompanyName:       "Bain",
		LinkedIn:          "https://linkedin.com/in/al",
		ProfilePicURL:     "https://cdn.example.com/al.jpg",
		PreviousCompanies: []string{"McKinsey"},
		Undergrad: &profile.Undergrad{
			School:     "MIT",
			DegreeName: "BSc",
			Grade:      "3.9",
		},
		CurrentCompany: &profile.Employment{
			Company:     "Bain",
			Title:       "Consultant",
			Description: "long internal text",
		},
	}

	f := profile.FilterSearchResult(p)
	if f.ID != "u1" || f.FullName != "Al" || f.CompanyName != "Bain" {
		t.Fatalf("unexpected projection: %+v", f)
	}
	if f.Undergrad.Grade != "" {
		t.Fatalf("undergrad grade should be dropped from search projection")
	}
	if f.CurrentCompany.Description != "" {
		t.Fatalf("company description should be dropped")
	}

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, forbidden := range []string{"u1", "linkedin.com", "cdn.example.com"} {
		if strings.Contains(string(b), forbidden) {
			t.Fatalf("serialized projection leaks %q: %s", forbidden, b)
		}
	}
}

func TestFilterDetailed_KeepsRelevantFields(t *testing.T) {
	p := &profile.Detailed{
		ID:         "u2",
		FullName:   "Bea",
		Occupation: "Associate",
		City:       "Boston",
		Headline:   "Finance professional",
		Summary:    "private summary",
		Education: []profile.Education{
			{School: "Harvard", DegreeName: "MBA"},
			{},
		},
		Experiences: []profile.Employment{
			{Company: "Goldman Sachs", Title: "Analyst"},
		},
		Certifications: []profile.Certification{{Name: "CFA"}, {}},
		ProfilePicURL:  "https://cdn.example.com/bea.jpg",
	}

	f := profile.FilterDetailed(p)
	if f.FullName != "Bea" || f.Occupation != "Associate" || f.Headline != "Finance professional" {
		t.Fatalf("unexpected projection: %+v", f)
	}
	if len(f.Education) != 1 || len(f.Experiences) != 1 || len(f.Certifications) != 1 {
		t.Fatalf("empty entries should be pruned: %+v", f)
	}

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, forbidden := range []string{"u2", "private summary", "cdn.example.com"} {
		if strings.Contains(string(b), forbidden) {
			t.Fatalf("serialized projection leaks %q: %s", forbidden, b)
		}
	}
}
