package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// SEOSuggestion is the structured answer of the SEO advisor call.
type SEOSuggestion struct {
	SeoTitle       string `json:"seoTitle"`
	SeoDescription string `json:"seoDescription"`
	Reasoning      string `json:"reasoning"`
}

var seoSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"seoTitle":       {Type: genai.TypeString},
		"seoDescription": {Type: genai.TypeString},
		"reasoning":      {Type: genai.TypeString},
	},
	Required: []string{"seoTitle", "seoDescription", "reasoning"},
}

// SuggestSEO asks for a click-worthy SEO title, meta description and the
// reasoning behind them. Content is capped to keep the prompt bounded.
func (g *Gateway) SuggestSEO(ctx context.Context, title, content string) (*SEOSuggestion, error) {
	prompt := fmt.Sprintf(`بصفتك خبير سيو (SEO) عالمي، قم بتحليل المقال واقترح تحسينات جذابة.
العنوان الحالي: %s
المحتوى: %s

المتطلبات:
1. العودة بـ SEO Title جذاب يزيد النقر.
2. العودة بـ Meta Description احترافي.
3. ذكر "السبب" (Reasoning) وراء هذه الاختيارات بلهجة خبيرة.`,
		title, truncateRunes(content, 1000))

	result, err := g.generate(ctx, "suggest_seo", g.cfg.TextModel, prompt,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   seoSchema,
		})
	if err != nil {
		return nil, err
	}

	var out SEOSuggestion
	if err := json.Unmarshal([]byte(cleanJSON(result.Text())), &out); err != nil {
		return nil, errMalformed("suggest_seo", err)
	}
	if out.SeoTitle == "" || out.SeoDescription == "" {
		return nil, errMalformed("suggest_seo", fmt.Errorf("empty suggestion fields"))
	}
	return &out, nil
}
