// Package assembler writes the complete output bundle for one product row.
package assembler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"postgen/internal/composer"
	"postgen/internal/config"
	"postgen/internal/images"
	"postgen/internal/logger"
	"postgen/internal/models"
)

// Bundle file layout, fixed per row under {out}/{slug}/.
const (
	ImagesDir   = "images"
	CaptionFile = "caption.txt"
	AltTextFile = "alt_text.txt"
	MetaFile    = "meta.json"
)

// Assembler orchestrates image processing and text composition for one
// row and persists the bundle.
type Assembler struct {
	images  *images.Processor
	caption *composer.CaptionComposer
	log     *logger.Logger
}

// New creates an assembler from the generator configuration.
func New(cfg *config.Config, log *logger.Logger) *Assembler {
	return &Assembler{
		images:  images.NewProcessor(cfg.Images, log),
		caption: composer.NewCaptionComposer(cfg.Caption.Disclosure),
		log:     log,
	}
}

// Assemble writes the bundle for one normalized product under outRoot.
// Individual image failures never block the caption, alt text or
// metadata; only filesystem failures surface as errors. Re-running
// against the same root overwrites the bundle in place.
func (a *Assembler) Assemble(p *models.Product, outRoot string) (*models.BundleResult, error) {
	dir := filepath.Join(outRoot, p.Slug)

	if err := os.MkdirAll(filepath.Join(dir, ImagesDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory: %w", err)
	}

	results := a.images.ProcessAll(p.ImageURLs, filepath.Join(dir, ImagesDir))
	saved := images.Saved(results)

	caption := a.caption.Compose(p)
	if err := os.WriteFile(filepath.Join(dir, CaptionFile), []byte(caption), 0644); err != nil {
		return nil, fmt.Errorf("failed to write caption: %w", err)
	}

	altText := composer.ComposeAltText(p)
	if err := os.WriteFile(filepath.Join(dir, AltTextFile), []byte(altText), 0644); err != nil {
		return nil, fmt.Errorf("failed to write alt text: %w", err)
	}

	if err := a.writeMeta(p, saved, dir); err != nil {
		return nil, err
	}

	a.log.Debug("bundle assembled", "slug", p.Slug, "images", len(saved))

	return &models.BundleResult{
		Slug:            p.Slug,
		Dir:             dir,
		ImagesSaved:     len(saved),
		ImagesRequested: len(results),
	}, nil
}

// writeMeta persists meta.json. The images list holds exactly the
// filenames written to disk; failed downloads are absent, not stubbed.
func (a *Assembler) writeMeta(p *models.Product, saved []string, dir string) error {
	meta := models.PostMeta{
		ProductID:    p.ID,
		Title:        p.Title,
		PostType:     p.PostType,
		Images:       saved,
		CaptionFile:  CaptionFile,
		AltTextFile:  AltTextFile,
		AffiliateURL: p.AffiliateURL,
	}

	jsonData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, MetaFile), jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write meta: %w", err)
	}

	return nil
}
