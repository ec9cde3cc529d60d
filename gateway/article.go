package gateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"eliteblog/models"
)

// GeneratedArticle is a full draft produced from a title, with the web
// sources the model grounded itself on.
type GeneratedArticle struct {
	Content string
	Sources []models.GroundingReference
}

// GenerateArticle writes a complete article for the editor, grounded on
// Google Search so current facts and figures can be cited.
func (g *Gateway) GenerateArticle(ctx context.Context, title, category string, market models.TargetMarket) (*GeneratedArticle, error) {
	if market == "" {
		market = models.MarketGlobal
	}
	prompt := fmt.Sprintf(`بصفتك كاتب محتوى عالمي محترف، اكتب مقالاً كاملاً باللغة العربية.
العنوان: %s
التصنيف: %s
السوق المستهدف: %s

المتطلبات:
1. ابحث عن أحدث المعلومات والإحصائيات حول الموضوع.
2. مقال من 600 إلى 900 كلمة بأسلوب جذاب ومقسم بعناوين فرعية.
3. اختم بخلاصة عملية للقارئ.
أعد نص المقال فقط دون مقدمات خارجه.`, title, category, market)

	result, err := g.generate(ctx, "generate_article", g.cfg.ProModel, prompt,
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		})
	if err != nil {
		return nil, err
	}

	content := result.Text()
	if content == "" {
		return nil, errMalformed("generate_article", fmt.Errorf("model returned no content"))
	}
	return &GeneratedArticle{
		Content: content,
		Sources: groundingSources(result),
	}, nil
}
