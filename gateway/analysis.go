package gateway

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"eliteblog/models"
)

// LatLng frames an analysis for local SEO.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AnalyzeInput selects what the blog analysis looks at: an external blog via
// its sitemap (optionally with pre-fetched feed context), or the local posts.
type AnalyzeInput struct {
	SitemapURL    string
	FeedContext   string
	InternalPosts []models.Post
	LatLng        *LatLng
}

// AnalyzeBlog produces a long-form Arabic markdown report covering SEO,
// content gaps and monetization, grounded on Google Search. Grounding source
// links are appended as a citation section.
func (g *Gateway) AnalyzeBlog(ctx context.Context, in AnalyzeInput) (string, error) {
	var b strings.Builder
	b.WriteString("بصفتك مستشار نمو مدونات عالمي، قدم تقريراً معمقاً باللغة العربية وبتنسيق Markdown يغطي:\n")
	b.WriteString("1. تدقيق SEO الشامل.\n2. فجوات المحتوى والمواضيع المفقودة.\n3. فرص زيادة الأرباح الإعلانية.\n4. تحسين تفاعل القراء.\n\n")

	if in.SitemapURL != "" {
		fmt.Fprintf(&b, "المدونة المستهدفة: خريطة الموقع %s\n", in.SitemapURL)
		if in.FeedContext != "" {
			fmt.Fprintf(&b, "آخر المقالات المنشورة فيها:\n%s\n", in.FeedContext)
		}
	} else {
		b.WriteString("حلل مقالات المدونة التالية:\n")
		for _, p := range in.InternalPosts {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", p.Category, p.Title, truncateRunes(p.Content, 500))
		}
	}

	if in.LatLng != nil {
		fmt.Fprintf(&b,
			"\nفعّل تحليل SEO المحلي: موقع الناشر الحالي هو خط العرض %.4f وخط الطول %.4f؛ اقترح كلمات مفتاحية وفرصاً محلية لهذه المنطقة.\n",
			in.LatLng.Latitude, in.LatLng.Longitude)
	}

	result, err := g.generate(ctx, "analyze_blog", g.cfg.ProModel, b.String(),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
		})
	if err != nil {
		return "", err
	}

	report := result.Text()
	if report == "" {
		return "", errMalformed("analyze_blog", fmt.Errorf("model returned no report"))
	}
	return appendSources(report, groundingSources(result)), nil
}

// AnalyzeGaps is the assistant's content-gap audit over the local posts.
func (g *Gateway) AnalyzeGaps(ctx context.Context, posts []models.Post) (string, error) {
	var b strings.Builder
	b.WriteString("حلل مدونتي التالية واكتشف المواضيع الرابحة التي لم أغطها بعد لزيادة الأرباح. قدم 5 اقتراحات محددة مع سبب كل اقتراح:\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", p.Category, p.Title, p.Excerpt)
	}

	result, err := g.generate(ctx, "analyze_gaps", g.cfg.TextModel, b.String(), nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// SpeedAudit turns a measured page load and its extracted text into concrete
// speed optimization suggestions for a Blogger blog.
func (g *Gateway) SpeedAudit(ctx context.Context, url, pageText string, loadMillis int64) (string, error) {
	prompt := fmt.Sprintf(`بصفتك خبير أداء ويب، حلل سرعة مدونة Blogger التالية وقدم اقتراحات عملية بتنسيق Markdown.
الرابط: %s
زمن التحميل المقاس: %d مللي ثانية
مقتطف من محتوى الصفحة:
%s

ركز على: حجم الصور، السكربتات الخارجية، القوالب، والتخزين المؤقت.`,
		url, loadMillis, truncateRunes(pageText, 2000))

	result, err := g.generate(ctx, "speed_audit", g.cfg.ProModel, prompt, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func appendSources(report string, sources []models.GroundingReference) string {
	if len(sources) == 0 {
		return report
	}
	var b strings.Builder
	b.WriteString(report)
	b.WriteString("\n\n### المصادر\n")
	for _, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URI
		}
		fmt.Fprintf(&b, "- [%s](%s)\n", title, s.URI)
	}
	return b.String()
}
