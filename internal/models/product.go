// Package models defines the data structures shared across the post generation pipeline.
package models

// RawRow holds one spreadsheet row as read, keyed by header column name.
// Values are untrimmed cell text; missing columns are simply absent keys.
type RawRow map[string]string

// Get returns the cell value for a column, or "" if the column is absent.
func (r RawRow) Get(column string) string {
	return r[column]
}

// Product is one normalized feed row. All optional fields are resolved
// during normalization: strings are "" when absent, ReviewCount is nil
// when absent, and list fields hold only trimmed non-empty tokens.
type Product struct {
	ID           string
	Slug         string
	Title        string
	ShortDesc    string
	Benefits     []string
	AffiliateURL string
	ImageURLs    []string
	PostType     string
	Price        string
	Rating       string
	ReviewCount  *int
	Category     string
	Hashtags     []string

	CTAOverride        string
	DisclosureOverride string
	AltTextOverride    string
}
