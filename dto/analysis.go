package dto

// AnalyseBlogRequest targets an external blog by its sitemap or home URL.
type AnalyseBlogRequest struct {
	SitemapURL string   `json:"sitemapUrl" binding:"required"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// AnalyseInternalRequest audits this blog's own content.
type AnalyseInternalRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// SpeedAuditRequest measures and reviews a single page.
type SpeedAuditRequest struct {
	URL string `json:"url" binding:"required"`
}

// AnalysisDTO wraps a markdown report; grounding citations are already
// appended to the report text.
type AnalysisDTO struct {
	Report string `json:"report"`
}

// SpeedAuditDTO is the audit report plus the raw measurement it reviewed.
type SpeedAuditDTO struct {
	Report     string `json:"report"`
	URL        string `json:"url"`
	LoadMillis int64  `json:"loadMillis"`
	Rendered   bool   `json:"rendered"`
}
