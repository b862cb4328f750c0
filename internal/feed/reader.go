// Package feed reads tabular product feeds into raw rows keyed by column name.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"postgen/internal/models"
)

// Input column names. post_group and seo_keywords_comma are read but
// currently unused (reserved for grouping logic).
const (
	ColProductID          = "product_id"
	ColTitle              = "title"
	ColShortDesc          = "short_desc"
	ColBenefitsPipe       = "benefits_pipe"
	ColAffiliateURL       = "affiliate_url"
	ColImageURLsComma     = "image_urls_comma"
	ColPostType           = "post_type"
	ColPostGroup          = "post_group"
	ColPrice              = "price"
	ColRating             = "rating"
	ColReviewCount        = "review_count"
	ColCategory           = "category"
	ColSEOKeywordsComma   = "seo_keywords_comma"
	ColHashtagsComma      = "hashtags_comma"
	ColCTAOverride        = "cta_override"
	ColDisclosureOverride = "disclosure_override"
	ColAltTextOverride    = "alt_text_override"
)

// Feed reading errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported feed format (expected .xlsx, .xlsm or .csv)")
	ErrNoSheets          = errors.New("workbook contains no sheets")
	ErrEmptyFeed         = errors.New("feed contains no header row")
)

// ReadFile reads the feed at path and returns one RawRow per data row.
// The first row is the header; cells are matched to columns by header
// name. Fully empty rows are skipped.
func ReadFile(path string) ([]models.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readWorkbook(path string) ([]models.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return tableToRows(rows)
}

func readCSV(path string) ([]models.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}

	return tableToRows(records)
}

// tableToRows pairs header names with cell values. Short rows simply
// leave the trailing columns absent.
func tableToRows(table [][]string) ([]models.RawRow, error) {
	if len(table) == 0 {
		return nil, ErrEmptyFeed
	}

	headers := make([]string, len(table[0]))
	for i, h := range table[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []models.RawRow

	for _, record := range table[1:] {
		row := models.RawRow{}
		empty := true

		for i, cell := range record {
			if i >= len(headers) || headers[i] == "" {
				continue
			}

			row[headers[i]] = cell

			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}

		if empty {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}
