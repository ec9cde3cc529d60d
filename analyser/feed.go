package analyser

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedContext fetches an external blog's RSS/Atom feed and flattens the
// latest items into prompt context. Failures are not fatal to an analysis;
// callers proceed with an empty context.
func FeedContext(feedURL string, limit int) (string, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			// some blogs serve feeds with broken certificate chains
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	count := 0
	for _, item := range feed.Items {
		if limit > 0 && count >= limit {
			break
		}
		fmt.Fprintf(&b, "- %s (%s)\n", item.Title, item.Link)
		count++
	}
	return b.String(), nil
}

// GuessFeedURL maps a sitemap or blog URL to the conventional Blogger/
// WordPress feed locations. The first guess is the URL itself, for callers
// that already hold a feed link.
func GuessFeedURL(raw string) []string {
	raw = strings.TrimSuffix(raw, "/")
	if strings.HasSuffix(raw, ".xml") && strings.Contains(raw, "sitemap") {
		base := raw[:strings.LastIndex(raw, "/")]
		return []string{base + "/feeds/posts/default?alt=rss", base + "/feed"}
	}
	return []string{raw, raw + "/feeds/posts/default?alt=rss", raw + "/feed"}
}
