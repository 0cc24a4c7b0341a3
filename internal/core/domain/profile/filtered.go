package profile

// Filtered is the reduced projection of a profile used as the LLM prompt
// payload and as cache-key input. Keeping both uses on the same projection
// means two requests differing only in fields irrelevant to suggestions
// (emails, URLs, internal bookkeeping) still hit the same cache entry, and
// no sensitive raw field ever reaches the prompt or the key derivation.
//
// The source profile ID rides along for key derivation only and is never
// serialized.
type Filtered struct {
	ID                string          `json:"-"`
	FullName          string          `json:"full_name,omitempty"`
	Title             string          `json:"title,omitempty"`
	Occupation        string          `json:"occupation,omitempty"`
	CompanyName       string          `json:"company_name,omitempty"`
	School            string          `json:"school,omitempty"`
	City              string          `json:"city,omitempty"`
	Headline          string          `json:"headline,omitempty"`
	PreviousCompanies []string        `json:"previous_companies,omitempty"`
	PreviousTitles    []string        `json:"previous_titles,omitempty"`
	Undergrad         *Undergrad      `json:"undergrad,omitempty"`
	CurrentCompany    *Employment     `json:"current_company,omitempty"`
	Education         []Education     `json:"education,omitempty"`
	Experiences       []Employment    `json:"experiences,omitempty"`
	Certifications    []Certification `json:"certifications,omitempty"`
}

// FilterSearchResult projects a search-result profile down to the fields
// relevant for conversation suggestions.
func FilterSearchResult(p *SearchResult) Filtered {
	if p == nil {
		return Filtered{}
	}
	f := Filtered{
		ID:          p.ID,
		FullName:    p.FullName,
		Title:       p.Title,
		CompanyName: p.CompanyName,
		School:      p.School,
	}
	if len(p.PreviousCompanies) > 0 {
		f.PreviousCompanies = append([]string(nil), p.PreviousCompanies...)
	}
	if len(p.PreviousTitles) > 0 {
		f.PreviousTitles = append([]string(nil), p.PreviousTitles...)
	}
	if p.Undergrad != nil {
		f.Undergrad = &Undergrad{
			School:       p.Undergrad.School,
			DegreeName:   p.Undergrad.DegreeName,
			FieldOfStudy: p.Undergrad.FieldOfStudy,
			EndsAt:       p.Undergrad.EndsAt,
		}
	}
	if p.CurrentCompany != nil {
		f.CurrentCompany = &Employment{
			Company:  p.CurrentCompany.Company,
			Title:    p.CurrentCompany.Title,
			Location: p.CurrentCompany.Location,
		}
	}
	return f
}

// FilterDetailed projects a detailed profile down to the fields relevant
// for conversation suggestions. Certifications keep their names only.
func FilterDetailed(p *Detailed) Filtered {
	if p == nil {
		return Filtered{}
	}
	f := Filtered{
		ID:         p.ID,
		FullName:   p.FullName,
		Occupation: p.Occupation,
		City:       p.City,
		Headline:   p.Headline,
	}
	for _, edu := range p.Education {
		e := Education{
			School:       edu.School,
			DegreeName:   edu.DegreeName,
			FieldOfStudy: edu.FieldOfStudy,
			EndsAt:       edu.EndsAt,
			Grade:        edu.Grade,
		}
		if e != (Education{}) {
			f.Education = append(f.Education, e)
		}
	}
	for _, exp := range p.Experiences {
		e := Employment{
			Company:  exp.Company,
			Title:    exp.Title,
			Location: exp.Location,
			StartsAt: exp.StartsAt,
			EndsAt:   exp.EndsAt,
		}
		if e != (Employment{}) {
			f.Experiences = append(f.Experiences, e)
		}
	}
	for _, cert := range p.Certifications {
		if cert.Name != "" {
			f.Certifications = append(f.Certifications, Certification{Name: cert.Name})
		}
	}
	return f
}
