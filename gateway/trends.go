package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"eliteblog/models"
)

var trendsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic":           {Type: genai.TypeString},
			"reason":          {Type: genai.TypeString},
			"profitPotential": {Type: genai.TypeString, Enum: []string{"High", "Medium", "Emerging"}},
			"keywords":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"region":          {Type: genai.TypeString},
			"estimatedCPC":    {Type: genai.TypeString},
		},
		Required: []string{"topic", "reason", "profitPotential", "keywords"},
	},
}

// FetchTrends asks for high-CPC article topics in the given category and
// region. Schema violations surface as MalformedResponse; the trend service
// turns any failure into an empty list before it reaches a page.
func (g *Gateway) FetchTrends(ctx context.Context, category, region string) ([]models.TrendIdea, error) {
	prompt := fmt.Sprintf(`بصفتك محلل أسواق إعلانية، اقترح 6 مواضيع مقالات رائجة حالياً ذات عائد نقرة (CPC) مرتفع.
القطاع: %s
السوق المستهدف: %s

لكل موضوع حدد: سبب رواجه الآن، درجة الربحية (High أو Medium أو Emerging)، قائمة كلمات مفتاحية، المنطقة، وتقدير CPC بالدولار.`,
		category, region)

	result, err := g.generate(ctx, "fetch_trends", g.cfg.TextModel, prompt,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   trendsSchema,
		})
	if err != nil {
		return nil, err
	}

	var ideas []models.TrendIdea
	if err := json.Unmarshal([]byte(cleanJSON(result.Text())), &ideas); err != nil {
		return nil, errMalformed("fetch_trends", err)
	}
	for i := range ideas {
		if ideas[i].Region == "" {
			ideas[i].Region = region
		}
	}
	return ideas, nil
}
