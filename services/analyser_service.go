package services

import (
	"context"

	"eliteblog/analyser"
	"eliteblog/dto"
	"eliteblog/gateway"
	"eliteblog/logger"
	"eliteblog/store"
)

// AnalyserService runs the three blog analysis flows: an external blog by
// sitemap, this blog's own posts, and a single-page speed audit.
type AnalyserService struct {
	gw    *gateway.Gateway
	store *store.PostStore
}

func NewAnalyserService(gw *gateway.Gateway, st *store.PostStore) *AnalyserService {
	return &AnalyserService{gw: gw, store: st}
}

// AnalyseExternal audits a third-party blog. The feed context is best
// effort: the report still runs when every feed guess fails.
func (s *AnalyserService) AnalyseExternal(ctx context.Context, req dto.AnalyseBlogRequest) (dto.AnalysisDTO, error) {
	var feedCtx string
	for _, candidate := range analyser.GuessFeedURL(req.SitemapURL) {
		content, err := analyser.FeedContext(candidate, 10)
		if err != nil {
			logger.Log.Debugf("feed guess %s failed: %v", candidate, err)
			continue
		}
		if content != "" {
			feedCtx = content
			break
		}
	}

	report, err := s.gw.AnalyzeBlog(ctx, gateway.AnalyzeInput{
		SitemapURL:  req.SitemapURL,
		FeedContext: feedCtx,
		LatLng:      latLngOf(req.Latitude, req.Longitude),
	})
	if err != nil {
		return dto.AnalysisDTO{}, err
	}
	return dto.AnalysisDTO{Report: report}, nil
}

// AnalyseInternal audits the posts in the local store.
func (s *AnalyserService) AnalyseInternal(ctx context.Context, req dto.AnalyseInternalRequest) (dto.AnalysisDTO, error) {
	report, err := s.gw.AnalyzeBlog(ctx, gateway.AnalyzeInput{
		InternalPosts: s.store.List(),
		LatLng:        latLngOf(req.Latitude, req.Longitude),
	})
	if err != nil {
		return dto.AnalysisDTO{}, err
	}
	return dto.AnalysisDTO{Report: report}, nil
}

// SpeedAudit measures a page load and asks the gateway to review it.
// Headless rendering gives the realistic number; when no browser is
// available the plain fetch timing is used instead.
func (s *AnalyserService) SpeedAudit(ctx context.Context, req dto.SpeedAuditRequest) (dto.SpeedAuditDTO, error) {
	rendered := true
	page, err := analyser.FetchRenderedHTML(ctx, req.URL)
	if err != nil {
		logger.Log.Warnf("headless fetch of %s failed, falling back to plain GET: %v", req.URL, err)
		rendered = false
		page, err = analyser.FetchHTML(ctx, req.URL)
		if err != nil {
			return dto.SpeedAuditDTO{}, err
		}
	}

	text := analyser.ExtractText(page.HTML)
	report, err := s.gw.SpeedAudit(ctx, req.URL, text, page.LoadMillis)
	if err != nil {
		return dto.SpeedAuditDTO{}, err
	}
	return dto.SpeedAuditDTO{
		Report:     report,
		URL:        req.URL,
		LoadMillis: page.LoadMillis,
		Rendered:   rendered,
	}, nil
}

func latLngOf(lat, lng *float64) *gateway.LatLng {
	if lat == nil || lng == nil {
		return nil
	}
	return &gateway.LatLng{Latitude: *lat, Longitude: *lng}
}
