package models

// TargetMarket is the audience a post is monetized for. Earnings math falls
// back to MarketGlobal for anything unrecognized.
type TargetMarket string

const (
	MarketGlobal TargetMarket = "Global"
	MarketUSA    TargetMarket = "USA"
	MarketEurope TargetMarket = "Europe"
	MarketMENA   TargetMarket = "MENA"
)

// Categories posts can be filed under. The editor's select box offers
// exactly these.
var Categories = []string{"تقنية", "تصميم", "تسويق", "ريادة أعمال"}

// Post is the blog article record, the only domain entity of note.
// The id is a creation-timestamp string, unique within the session; the list
// holding posts is ordered newest first.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"readTime"`
	Views    int64  `json:"views"`

	SeoTitle       string       `json:"seoTitle,omitempty"`
	SeoDescription string       `json:"seoDescription,omitempty"`
	TargetMarket   TargetMarket `json:"targetMarket,omitempty"`
	ProfitScore    int          `json:"profitScore,omitempty"` // 1-100
}

// PostPatch carries the fields an update may overwrite. Nil pointers leave
// the original value in place.
type PostPatch struct {
	Title          *string       `json:"title,omitempty"`
	Content        *string       `json:"content,omitempty"`
	Category       *string       `json:"category,omitempty"`
	Image          *string       `json:"image,omitempty"`
	SeoTitle       *string       `json:"seoTitle,omitempty"`
	SeoDescription *string       `json:"seoDescription,omitempty"`
	TargetMarket   *TargetMarket `json:"targetMarket,omitempty"`
	ProfitScore    *int          `json:"profitScore,omitempty"`
}

// SeedPosts returns the hard-coded initial post list the store boots with.
func SeedPosts() []Post {
	return []Post{
		{
			ID:             "1",
			Title:          "مستقبل الذكاء الاصطناعي في 2025",
			Excerpt:        "استكشاف شامل للتحولات الجذرية التي سيشهدها العالم مع تطور نماذج اللغة الكبيرة والتطبيقات العملية.",
			Content:        "يعتبر عام 2025 نقطة تحول حقيقية في تاريخ التقنية...",
			Author:         "أحمد محمود",
			Date:           "24 أكتوبر 2024",
			Category:       "تقنية",
			Image:          "https://picsum.photos/seed/tech/800/400",
			ReadTime:       "5 دقائق",
			Views:          1250,
			SeoTitle:       "دليل الذكاء الاصطناعي 2025: ما الذي ينتظرنا؟",
			SeoDescription: "تعرف على أهم التوقعات والتحولات في عالم الذكاء الاصطناعي لعام 2025.",
			TargetMarket:   MarketGlobal,
		},
	}
}
