// Package batch runs the post assembler over every feed row in order.
package batch

import (
	"fmt"

	"postgen/internal/assembler"
	"postgen/internal/config"
	"postgen/internal/logger"
	"postgen/internal/models"
	"postgen/internal/normalizer"
)

// Driver processes rows sequentially. Rows are independent: one row's
// failure is logged and the batch moves on.
type Driver struct {
	normalizer *normalizer.Normalizer
	assembler  *assembler.Assembler
	log        *logger.Logger
}

// NewDriver creates a batch driver from the generator configuration.
func NewDriver(cfg *config.Config, log *logger.Logger) *Driver {
	return &Driver{
		normalizer: normalizer.New(),
		assembler:  assembler.New(cfg, log),
		log:        log,
	}
}

// Run assembles one bundle per row under outRoot, in table order, and
// returns one result per row.
func (d *Driver) Run(rows []models.RawRow, outRoot string) []models.BundleResult {
	results := make([]models.BundleResult, 0, len(rows))

	for i, row := range rows {
		result := d.processRow(row, outRoot)
		if result.Err != nil {
			d.log.Error("row failed", "row", i+1, "slug", result.Slug, "error", result.Err)
		} else {
			d.log.Info("row processed", "row", i+1, "slug", result.Slug,
				"images", result.ImagesSaved)
		}

		results = append(results, result)
	}

	return results
}

// processRow isolates one row end to end, converting even a panic into
// a per-row failure so a malformed row cannot stop the batch.
func (d *Driver) processRow(row models.RawRow, outRoot string) (result models.BundleResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("row processing panic: %v", r)
		}
	}()

	product := d.normalizer.Normalize(row)
	result.Slug = product.Slug

	bundle, err := d.assembler.Assemble(product, outRoot)
	if err != nil {
		result.Err = err

		return result
	}

	return *bundle
}
