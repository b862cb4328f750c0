package report

import (
	"errors"
	"strings"
	"testing"

	"postgen/internal/models"
)

func TestRenderTable(t *testing.T) {
	got := RenderTable(
		[]string{"post", "images", "status"},
		[][]string{
			{"widget", "2/3", "ok"},
			{"a-much-longer-slug", "0/0", "ok"},
		},
	)

	expected := strings.Join([]string{
		"| post               | images | status |",
		"| ------------------ | ------ | ------ |",
		"| widget             | 2/3    | ok     |",
		"| a-much-longer-slug | 0/0    | ok     |",
	}, "\n")

	if got != expected {
		t.Errorf("RenderTable mismatch:\ngot:\n%s\nwant:\n%s", got, expected)
	}
}

func TestRenderTable_WideRunes(t *testing.T) {
	got := RenderTable(
		[]string{"post", "status"},
		[][]string{
			{"寬字符", "ok"},
			{"plain", "ok"},
		},
	)

	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}

	// All rows align on the same closing pipe column.
	for i := 1; i < len(lines); i++ {
		if !strings.HasSuffix(lines[i], "|") {
			t.Errorf("Line %d does not end with pipe: %q", i, lines[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	results := []models.BundleResult{
		{Slug: "widget", ImagesSaved: 2, ImagesRequested: 3},
		{Slug: "broken", Err: errors.New("boom")},
	}

	got := Summarize(results)

	for _, want := range []string{"widget", "2/3", "failed: boom", "Posts: 2 (1 failed)", "Images: 2/3"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summarize missing %q in:\n%s", want, got)
		}
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)

	if !strings.Contains(got, "Posts: 0") {
		t.Errorf("Expected zero totals, got:\n%s", got)
	}
}
