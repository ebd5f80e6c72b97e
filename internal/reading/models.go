package reading

import (
	"time"

	"cosmicmatch/internal/ephemeris"
	"cosmicmatch/internal/prompt"
	"cosmicmatch/internal/types"
)

// Request asks for a reading of one person, or of a couple when Partner is set
type Request struct {
	Self     types.BirthDetails  `json:"self"`
	Partner  *types.BirthDetails `json:"partner,omitempty"`
	Focus    string              `json:"focus,omitempty"`
	Question string              `json:"question,omitempty"`
	Language string              `json:"language,omitempty"`
}

// SubjectChart is a person's resolved birthplace and computed chart
type SubjectChart struct {
	Name      string            `json:"name"`
	BirthDate string            `json:"birth_date"`
	BirthTime string            `json:"birth_time"`
	Place     types.Place       `json:"place"`
	Chart     *ephemeris.Result `json:"chart"`
}

// Report is a generated reading. HTML and PDF are kept out of the JSON
// view and served by their own endpoints.
type Report struct {
	ID        string        `json:"id"`
	Mode      prompt.Mode   `json:"mode"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
	Self      SubjectChart  `json:"self"`
	Partner   *SubjectChart `json:"partner,omitempty"`
	Text      string        `json:"text"`
	HTML      []byte        `json:"-"`
	PDF       []byte        `json:"-"`
}

// record is the stored form of a report
type record struct {
	Report *Report `json:"report"`
	HTML   []byte  `json:"html"`
	PDF    []byte  `json:"pdf"`
}
