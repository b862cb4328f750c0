// Package normalizer resolves raw feed rows into normalized product records.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"postgen/internal/feed"
	"postgen/internal/models"
	"postgen/pkg/slug"
)

// Normalizer handles row field resolution. Normalization never fails:
// absent optional fields resolve to their explicit empty defaults.
type Normalizer struct {
	numberPattern *regexp.Regexp
}

// New creates a new normalizer instance.
func New() *Normalizer {
	return &Normalizer{
		numberPattern: regexp.MustCompile(`(\d+)`),
	}
}

// Normalize converts one raw row into a Product. The identifier falls
// back to the slugified title, and to "post" when both are empty. The
// directory slug is always derived from the resolved identifier.
func (n *Normalizer) Normalize(row models.RawRow) *models.Product {
	title := strings.TrimSpace(row.Get(feed.ColTitle))

	id := strings.TrimSpace(row.Get(feed.ColProductID))
	if id == "" {
		id = slug.Make(title)
	}

	return &models.Product{
		ID:           id,
		Slug:         slug.Make(id),
		Title:        title,
		ShortDesc:    strings.TrimSpace(row.Get(feed.ColShortDesc)),
		Benefits:     splitList(row.Get(feed.ColBenefitsPipe), "|"),
		AffiliateURL: strings.TrimSpace(row.Get(feed.ColAffiliateURL)),
		ImageURLs:    splitList(row.Get(feed.ColImageURLsComma), ","),
		PostType:     strings.TrimSpace(row.Get(feed.ColPostType)),
		Price:        strings.TrimSpace(row.Get(feed.ColPrice)),
		Rating:       strings.TrimSpace(row.Get(feed.ColRating)),
		ReviewCount:  n.parseCount(row.Get(feed.ColReviewCount)),
		Category:     strings.TrimSpace(row.Get(feed.ColCategory)),
		Hashtags:     splitList(row.Get(feed.ColHashtagsComma), ","),

		CTAOverride:        strings.TrimSpace(row.Get(feed.ColCTAOverride)),
		DisclosureOverride: strings.TrimSpace(row.Get(feed.ColDisclosureOverride)),
		AltTextOverride:    strings.TrimSpace(row.Get(feed.ColAltTextOverride)),
	}
}

// parseCount extracts the first number found in a string, or nil when
// the string carries no digits. Spreadsheet cells frequently hold
// counts as floats ("10.0"), so digit extraction beats strict parsing.
func (n *Normalizer) parseCount(s string) *int {
	match := n.numberPattern.FindString(s)
	if match == "" {
		return nil
	}

	val, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}

	return &val
}

// splitList splits on sep, trims every token and drops empty ones.
func splitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
