package images

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"postgen/internal/config"
	"postgen/internal/logger"
	"postgen/internal/models"
)

// Processor turns a row's image URL list into square JPEGs on disk.
type Processor struct {
	fetcher *Fetcher
	size    int
	quality int
	maxURLs int
	log     *logger.Logger
}

// NewProcessor creates a processor from image settings.
func NewProcessor(cfg config.ImagesConfig, log *logger.Logger) *Processor {
	return &Processor{
		fetcher: NewFetcher(cfg.TimeoutSec),
		size:    cfg.Size,
		quality: cfg.Quality,
		maxURLs: cfg.MaxPerPost,
		log:     log,
	}
}

// ProcessAll downloads, squares and saves each URL into dir, in source
// order, truncated to the per-post cap. Saved files are numbered
// image_1.jpg..image_K.jpg over the successes only, so the sequence
// stays contiguous no matter which URLs failed. One result is returned
// per attempted URL; failures carry their error and are logged, never
// propagated.
func (p *Processor) ProcessAll(urls []string, dir string) []models.ImageResult {
	if len(urls) > p.maxURLs {
		p.log.Debug("truncating image list", "requested", len(urls), "cap", p.maxURLs)
		urls = urls[:p.maxURLs]
	}

	results := make([]models.ImageResult, 0, len(urls))
	saved := 0

	for _, url := range urls {
		filename := fmt.Sprintf("image_%d.jpg", saved+1)

		if err := p.processOne(url, filepath.Join(dir, filename)); err != nil {
			p.log.Warn("skipping image", "url", url, "error", err)
			results = append(results, models.ImageResult{URL: url, Err: err})

			continue
		}

		saved++

		results = append(results, models.ImageResult{URL: url, Filename: filename})
	}

	return results
}

// processOne fetches one URL and writes the squared JPEG to path.
func (p *Processor) processOne(url, path string) error {
	data, err := p.fetcher.Fetch(url)
	if err != nil {
		return err
	}

	img, err := p.Square(data)
	if err != nil {
		return err
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(p.quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// Square decodes raw image bytes and fits them to the target square:
// scale so the shorter side covers the box, then center-crop the
// overflow. The output never carries padding.
func (p *Processor) Square(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return imaging.Fill(img, p.size, p.size, imaging.Center, imaging.Lanczos), nil
}

// Saved filters results down to the filenames actually written, in order.
func Saved(results []models.ImageResult) []string {
	files := make([]string, 0, len(results))

	for _, r := range results {
		if r.Saved() {
			files = append(files, r.Filename)
		}
	}

	return files
}
