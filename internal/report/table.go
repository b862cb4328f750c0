// Package report renders the end-of-run batch summary.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"postgen/internal/models"
)

// RenderTable renders a pipe-delimited table with a header row and a
// dash separator, padding cells by display width so wide runes in
// product slugs stay aligned.
func RenderTable(headers []string, rows [][]string) string {
	table := append([][]string{headers}, rows...)

	colCount := len(headers)
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths by display width, min 3 so the separator keeps
	// its dashes.
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = 3
	}

	for _, row := range table {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	var result []string

	for i, row := range table {
		result = append(result, renderRow(row, colWidths, false))

		if i == 0 {
			result = append(result, renderRow(nil, colWidths, true))
		}
	}

	return strings.Join(result, "\n")
}

func renderRow(row []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

// Summarize renders the per-row result table plus totals for one run.
func Summarize(results []models.BundleResult) string {
	rows := make([][]string, 0, len(results))

	totalSaved := 0
	totalRequested := 0
	failures := 0

	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "failed: " + r.Err.Error()
			failures++
		}

		rows = append(rows, []string{
			r.Slug,
			fmt.Sprintf("%d/%d", r.ImagesSaved, r.ImagesRequested),
			status,
		})

		totalSaved += r.ImagesSaved
		totalRequested += r.ImagesRequested
	}

	var sb strings.Builder

	sb.WriteString(RenderTable([]string{"post", "images", "status"}, rows))
	sb.WriteString("\n\n")
	sb.WriteString("Posts: " + strconv.Itoa(len(results)))

	if failures > 0 {
		sb.WriteString(fmt.Sprintf(" (%d failed)", failures))
	}

	sb.WriteString(fmt.Sprintf("  Images: %d/%d\n", totalSaved, totalRequested))

	return sb.String()
}
