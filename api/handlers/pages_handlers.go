package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"eliteblog/services"
)

// LegalSection is one titled paragraph of a legal page.
type LegalSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// LegalPage is the static privacy/terms content.
type LegalPage struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Sections    []LegalSection `json:"sections"`
}

var privacyPage = LegalPage{
	Title:       "سياسة الخصوصية (Privacy Policy)",
	Description: "نحن نولي أهمية كبرى لخصوصية زوارنا. توضح هذه الوثيقة أنواع المعلومات الشخصية التي يتم استلامها وجمعها وكيفية استخدامها.",
	Sections: []LegalSection{
		{Title: "ملفات تعريف الارتباط (Cookies)", Body: "نستخدم ملفات تعريف الارتباط لتخزين معلومات حول تفضيلات الزوار وتسجيل معلومات محددة عن المستخدم."},
		{Title: "إعلانات جوجل أدسنس", Body: "تستخدم جوجل، كطرف ثالث، ملفات تعريف الارتباط لعرض الإعلانات على موقعنا بناءً على زيارات المستخدم."},
		{Title: "تأمين البيانات", Body: "نحن نلتزم بحماية بياناتك الشخصية ولا نقوم ببيعها أو مشاركتها مع أي أطراف ثالثة دون إذنك."},
	},
}

var termsPage = LegalPage{
	Title:       "شروط الاستخدام (Terms of Service)",
	Description: "باستخدامك لهذه المدونة، فإنك توافق على الالتزام بالشروط والأحكام التالية.",
	Sections: []LegalSection{
		{Title: "حقوق الملكية", Body: "جميع المحتويات المنشورة هي ملك لمدونة EliteBlog Pro ومحمية بموجب قوانين الملكية الفكرية."},
		{Title: "الاستخدام المقبول", Body: "يُمنع استخدام الموقع في أي نشاط غير قانوني أو يهدف إلى الإضرار بالبنية التحتية للموقع."},
		{Title: "إخلاء المسؤولية", Body: "المعلومات المقدمة هي لأغراض تعليمية وإخبارية فقط، ولا نتحمل مسؤولية أي قرارات تتخذ بناءً عليها."},
	},
}

// PrivacyHandler serves the privacy policy content.
func PrivacyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, privacyPage)
	}
}

// TermsHandler serves the terms of service content.
func TermsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, termsPage)
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler serves sitemap.xml over the current post list. Post URLs
// use a slug of the title so crawlers see readable paths.
func SitemapHandler(svc *services.PostService, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		set := urlSet{
			Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs: []sitemapURL{
				{Loc: baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
			},
		}
		for _, p := range svc.List() {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        fmt.Sprintf("%s/posts/%s/%s", baseURL, p.ID, slug.Make(p.Title)),
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}

		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			c.String(http.StatusInternalServerError, "sitemap generation failed")
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
	}
}
