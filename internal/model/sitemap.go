package model

// SitemapRequest carries no input. It lets GET /sitemap reuse the
// typed handler pipeline.
type SitemapRequest struct{}

func (r *SitemapRequest) Validate() error {
	return nil
}
