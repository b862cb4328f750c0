package composer

import (
	"strings"
	"testing"

	"postgen/internal/config"
	"postgen/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func newTestComposer() *CaptionComposer {
	return NewCaptionComposer(config.DefaultDisclosure)
}

func TestCompose_FullRecord(t *testing.T) {
	c := newTestComposer()

	p := &models.Product{
		Title:        "Widget",
		Benefits:     []string{"Fast", "Light"},
		Price:        "$9",
		Rating:       "4.5",
		ReviewCount:  intPtr(10),
		AffiliateURL: "http://x",
		Hashtags:     []string{"deal", "new"},
	}

	expected := []string{
		"Check out Widget!",
		"• Fast",
		"• Light",
		"Price: $9",
		"Rating: 4.5/5 (10 reviews)",
		"Learn more and buy here: http://x",
		"#deal #new",
		"As an Amazon Associate I earn from qualifying purchases.",
	}

	got := strings.Split(c.Compose(p), "\n")
	if len(got) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(got), got)
	}

	for i, want := range expected {
		if got[i] != want {
			t.Errorf("Line %d = %q, want %q", i+1, got[i], want)
		}
	}
}

func TestCompose_MinimalRecord(t *testing.T) {
	c := newTestComposer()

	p := &models.Product{Title: "Widget"}

	got := strings.Split(c.Compose(p), "\n")
	if len(got) != 2 {
		t.Fatalf("Expected exactly 2 lines, got %d: %q", len(got), got)
	}

	if got[0] != "Check out Widget!" {
		t.Errorf("Line 1 = %q, want title hook", got[0])
	}

	if got[1] != config.DefaultDisclosure {
		t.Errorf("Line 2 = %q, want disclosure", got[1])
	}
}

func TestCompose_EmptyRecordIsDisclosureOnly(t *testing.T) {
	c := newTestComposer()

	got := c.Compose(&models.Product{})
	if got != config.DefaultDisclosure {
		t.Errorf("Compose = %q, want only the disclosure line", got)
	}
}

func TestCompose_CTAOverrideBeatsAffiliateURL(t *testing.T) {
	c := newTestComposer()

	p := &models.Product{
		Title:        "Widget",
		AffiliateURL: "http://x",
		CTAOverride:  "Buy now!",
	}

	caption := c.Compose(p)
	if !strings.Contains(caption, "Buy now!") {
		t.Errorf("Expected override CTA in caption, got %q", caption)
	}

	if strings.Contains(caption, "Learn more and buy here") {
		t.Errorf("Synthesized CTA should be replaced by override, got %q", caption)
	}
}

func TestCompose_NoCTAWithoutURLOrOverride(t *testing.T) {
	c := newTestComposer()

	caption := c.Compose(&models.Product{Title: "Widget"})
	if strings.Contains(caption, "Learn more") {
		t.Errorf("Expected no CTA line, got %q", caption)
	}
}

func TestCompose_RatingWithoutReviewCount(t *testing.T) {
	c := newTestComposer()

	caption := c.Compose(&models.Product{Rating: "4.0"})
	if !strings.Contains(caption, "Rating: 4.0/5\n") {
		t.Errorf("Expected bare rating line, got %q", caption)
	}

	if strings.Contains(caption, "reviews") {
		t.Errorf("Expected no review parenthetical, got %q", caption)
	}
}

func TestCompose_HashtagPrefixing(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{name: "Bare tags get prefixed", tags: []string{"deal", "new"}, expected: "#deal #new"},
		{name: "Existing prefix kept", tags: []string{"#sale", "hot"}, expected: "#sale #hot"},
	}

	c := newTestComposer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caption := c.Compose(&models.Product{Hashtags: tt.tags})
			if !strings.Contains(caption, tt.expected) {
				t.Errorf("Expected hashtag line %q in %q", tt.expected, caption)
			}
		})
	}
}

func TestCompose_DisclosureOverride(t *testing.T) {
	c := newTestComposer()

	p := &models.Product{DisclosureOverride: "Ad: affiliate links inside."}

	got := c.Compose(p)
	if got != "Ad: affiliate links inside." {
		t.Errorf("Compose = %q, want override disclosure", got)
	}
}
