package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"eliteblog/dto"
	"eliteblog/gateway"
	"eliteblog/models"
	"eliteblog/views"
)

type stubTrendSource struct {
	ideas []models.TrendIdea
	err   error
}

func (s stubTrendSource) FetchTrends(context.Context, string, string) ([]models.TrendIdea, error) {
	return s.ideas, s.err
}

func TestFetchTrendsDegradesToEmptyList(t *testing.T) {
	failures := []error{
		errors.New("network down"),
		&gateway.Error{Kind: gateway.MalformedResponse, Op: "fetch_trends"},
		&gateway.Error{Kind: gateway.QuotaExceeded, Op: "fetch_trends"},
		&gateway.Error{Kind: gateway.MissingCredential, Op: "fetch_trends"},
	}
	for _, failure := range failures {
		svc := NewTrendService(stubTrendSource{err: failure}, views.NewRouter())
		resp := svc.Fetch(t.Context(), "تأمين", "Europe")

		assert.NotNil(t, resp.Ideas)
		assert.Empty(t, resp.Ideas)
		// filters still render even when the scan failed
		assert.Equal(t, models.TrendRegions, resp.Regions)
		assert.Equal(t, "Europe", resp.Region)
	}
}

func TestFetchTrendsMapsIdeas(t *testing.T) {
	svc := NewTrendService(stubTrendSource{ideas: []models.TrendIdea{
		{Topic: "تأمين السيارات الذكي", Reason: "CPC مرتفع", ProfitPotential: models.PotentialHigh, Keywords: []string{"تأمين"}, Region: "USA", EstimatedCPC: "$18"},
	}}, views.NewRouter())

	resp := svc.Fetch(t.Context(), "", "")
	assert.Equal(t, models.TrendCategories[0], resp.Category)
	assert.Equal(t, models.TrendRegions[0], resp.Region)
	assert.Len(t, resp.Ideas, 1)
	assert.Equal(t, "تأمين السيارات الذكي", resp.Ideas[0].Topic)
	assert.Equal(t, "High", resp.Ideas[0].ProfitPotential)
}

func TestPromoteSeedsEditorDraft(t *testing.T) {
	router := views.NewRouter()
	svc := NewTrendService(stubTrendSource{}, router)

	state, err := svc.Promote(dto.PromoteTrendRequest{Topic: "موضوع رابح"})
	assert.NoError(t, err)
	assert.Equal(t, string(views.Editor), state.Mode)
	assert.NotNil(t, state.Draft)
	assert.Equal(t, "موضوع رابح", state.Draft.Title)
	assert.Equal(t, models.Categories[0], state.Draft.Category)

	// the router itself moved
	assert.Equal(t, views.Editor, router.Current().Mode)
}
