package gateway

import (
	"context"
	"fmt"
)

// Summarize produces a short Arabic summary (at most three sentences) of the
// given article content.
func (g *Gateway) Summarize(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(
		"بصفتك محررًا محترفًا، قدم ملخصًا جذابًا ومختصرًا (لا يزيد عن 3 جمل) للمقال التالي باللغة العربية: %s",
		content)

	result, err := g.generate(ctx, "summarize", g.cfg.TextModel, prompt, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// Translate renders the content in the target language, keeping the
// article's tone.
func (g *Gateway) Translate(ctx context.Context, content, lang string) (string, error) {
	prompt := fmt.Sprintf(
		"ترجم المقال التالي إلى اللغة (%s) مع الحفاظ على الأسلوب والنبرة الاحترافية. أعد النص المترجم فقط دون أي شرح إضافي:\n\n%s",
		lang, content)

	result, err := g.generate(ctx, "translate", g.cfg.TextModel, prompt, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// GenerateBusinessPlan produces a long-form Arabic business plan for the
// given project on the pro model.
func (g *Gateway) GenerateBusinessPlan(ctx context.Context, name, industry, goals string) (string, error) {
	prompt := fmt.Sprintf(`قم بتوليد خطة عمل (Business Plan) احترافية وعالمية للمشروع التالي باللغة العربية:
اسم المشروع: %s
القطاع: %s
الأهداف الأساسية: %s

يجب أن تتضمن الخطة الأقسام التالية بأسلوب استراتيجي:
1. ملخص تنفيذي (Executive Summary)
2. تحليل السوق والمنافسين
3. خطة العمليات والنمو
4. التوقعات المالية المبدئية`, name, industry, goals)

	result, err := g.generate(ctx, "business_plan", g.cfg.ProModel, prompt, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
