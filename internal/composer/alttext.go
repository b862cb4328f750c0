package composer

import (
	"strings"

	"postgen/internal/models"
)

// ComposeAltText renders one accessibility string per product. A
// non-empty override wins verbatim; otherwise the text is
// "Image of {title}." followed by the first sentence of the short
// description, with the whole result trimmed. A missing title reads
// as "product".
func ComposeAltText(p *models.Product) string {
	if p.AltTextOverride != "" {
		return p.AltTextOverride
	}

	title := p.Title
	if title == "" {
		title = "product"
	}

	desc := p.ShortDesc
	if desc != "" {
		desc, _, _ = strings.Cut(desc, ".")
	}

	return strings.TrimSpace("Image of " + title + ". " + desc)
}
