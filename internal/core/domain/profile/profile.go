package profile

import (
	"encoding/json"
	"strconv"
)

// Date is a loosely typed date as returned by the people API. Depending on
// the record it can be a plain string, a bare year, or an object like
// {"year": 2019, "month": 5}. It always renders back as a string.
type Date string

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*d = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Date(s)
	case '{':
		var obj struct {
			Year *int `json:"year"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.Year != nil {
			*d = Date(strconv.Itoa(*obj.Year))
		} else {
			*d = ""
		}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*d = Date(n.String())
	}
	return nil
}

// Undergrad holds the undergraduate education block attached to search results.
type Undergrad struct {
	School                 string `json:"school,omitempty"`
	DegreeName             string `json:"degree_name,omitempty"`
	FieldOfStudy           string `json:"field_of_study,omitempty"`
	EndsAt                 Date   `json:"ends_at,omitempty"`
	Grade                  string `json:"grade,omitempty"`
	ActivitiesAndSocieties string `json:"activities_and_societies,omitempty"`
	Description            string `json:"description,omitempty"`
}

// Employment describes a position at a company, used both for the
// current_company block on search results and for experience entries on
// detailed profiles.
type Employment struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Location    string `json:"location,omitempty"`
	StartsAt    Date   `json:"starts_at,omitempty"`
	EndsAt      Date   `json:"ends_at,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry on a detailed profile.
type Education struct {
	School       string `json:"school,omitempty"`
	DegreeName   string `json:"degree_name,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	EndsAt       Date   `json:"ends_at,omitempty"`
	Grade        string `json:"grade,omitempty"`
}

// Certification carries the name of a certification. The upstream API is
// inconsistent and sometimes returns bare strings instead of objects.
type Certification struct {
	Name string `json:"name"`
}

func (c *Certification) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		c.Name = s
		return nil
	}
	type alias Certification
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*c = Certification(a)
	return nil
}

// SearchResult is the profile shape embedded in search hits (the
// "document" object of the search API response).
type SearchResult struct {
	ID                string      `json:"id,omitempty"`
	FullName          string      `json:"full_name,omitempty"`
	Title             string      `json:"title,omitempty"`
	CompanyName       string      `json:"company_name,omitempty"`
	City              string      `json:"city,omitempty"`
	Country           string      `json:"country,omitempty"`
	LinkedIn          string      `json:"linkedin,omitempty"`
	School            string      `json:"school,omitempty"`
	PreviousCompanies []string    `json:"previous_companies,omitempty"`
	PreviousTitles    []string    `json:"previous_titles,omitempty"`
	ProfilePicURL     string      `json:"profile_pic_url,omitempty"`
	Undergrad         *Undergrad  `json:"undergrad,omitempty"`
	CurrentCompany    *Employment `json:"current_company,omitempty"`
}

// IsEmpty reports whether the profile carries no usable data.
func (p *SearchResult) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.ID == "" && p.FullName == "" && p.Title == "" && p.CompanyName == "" &&
		p.School == "" && len(p.PreviousCompanies) == 0 && len(p.PreviousTitles) == 0 &&
		p.Undergrad == nil && p.CurrentCompany == nil
}

// Detailed is the richer profile shape returned by the people endpoint.
type Detailed struct {
	ID             string          `json:"id,omitempty"`
	FullName       string          `json:"full_name,omitempty"`
	Occupation     string          `json:"occupation,omitempty"`
	City           string          `json:"city,omitempty"`
	Headline       string          `json:"headline,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Experiences    []Employment    `json:"experiences,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	VolunteerWork  json.RawMessage `json:"volunteer_work,omitempty"`
	Groups         json.RawMessage `json:"groups,omitempty"`
	ProfilePicURL  string          `json:"profile_pic_url,omitempty"`
}

// IsEmpty reports whether the profile carries no usable data.
func (p *Detailed) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.ID == "" && p.FullName == "" && p.Occupation == "" && p.Headline == "" &&
		len(p.Education) == 0 && len(p.Experiences) == 0 && len(p.Certifications) == 0
}
