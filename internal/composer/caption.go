// Package composer renders post text from normalized product records.
package composer

import (
	"fmt"
	"strings"

	"postgen/internal/models"
)

// CaptionComposer renders captions with a configurable fallback disclosure.
type CaptionComposer struct {
	disclosure string
}

// NewCaptionComposer creates a caption composer. The disclosure is the
// line appended when a row carries no disclosure_override.
func NewCaptionComposer(disclosure string) *CaptionComposer {
	return &CaptionComposer{disclosure: disclosure}
}

// Compose renders the caption for one product. The line order is fixed:
// title hook, benefit bullets, price, rating, call to action, hashtags,
// disclosure. Lines whose source field is absent are omitted entirely;
// the disclosure is the only unconditional line.
func (c *CaptionComposer) Compose(p *models.Product) string {
	var lines []string

	if p.Title != "" {
		lines = append(lines, fmt.Sprintf("Check out %s!", p.Title))
	}

	for _, benefit := range p.Benefits {
		lines = append(lines, "• "+benefit)
	}

	if p.Price != "" {
		lines = append(lines, "Price: "+p.Price)
	}

	if p.Rating != "" {
		line := fmt.Sprintf("Rating: %s/5", p.Rating)
		if p.ReviewCount != nil {
			line += fmt.Sprintf(" (%d reviews)", *p.ReviewCount)
		}

		lines = append(lines, line)
	}

	if cta := c.callToAction(p); cta != "" {
		lines = append(lines, cta)
	}

	if tags := hashtagLine(p.Hashtags); tags != "" {
		lines = append(lines, tags)
	}

	disclosure := p.DisclosureOverride
	if disclosure == "" {
		disclosure = c.disclosure
	}

	lines = append(lines, disclosure)

	return strings.Join(lines, "\n")
}

// callToAction prefers the row override verbatim, then synthesizes from
// the affiliate URL, then omits.
func (c *CaptionComposer) callToAction(p *models.Product) string {
	if p.CTAOverride != "" {
		return p.CTAOverride
	}

	if p.AffiliateURL != "" {
		return "Learn more and buy here: " + p.AffiliateURL
	}

	return ""
}

// hashtagLine joins hashtags with single spaces, prefixing "#" where
// the token lacks one.
func hashtagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tags))

	for _, tag := range tags {
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}

		parts = append(parts, tag)
	}

	return strings.Join(parts, " ")
}
