package models

// PostMeta is the meta.json record written alongside each bundle.
type PostMeta struct {
	ProductID    string   `json:"product_id"`
	Title        string   `json:"title"`
	PostType     string   `json:"post_type"`
	Images       []string `json:"images"`
	CaptionFile  string   `json:"caption_file"`
	AltTextFile  string   `json:"alt_text_file"`
	AffiliateURL string   `json:"affiliate_url"`
}

// ImageResult records the outcome of one image URL from a row.
type ImageResult struct {
	URL      string
	Filename string
	Err      error
}

// Saved reports whether the image was fetched, transformed and written.
func (r ImageResult) Saved() bool {
	return r.Err == nil
}

// BundleResult summarizes one assembled row for the batch report.
type BundleResult struct {
	Slug            string
	Dir             string
	ImagesSaved     int
	ImagesRequested int
	Err             error
}
