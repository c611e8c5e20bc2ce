package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ListingPathMarker identifies ad detail links on dubizzle.com.eg.
const ListingPathMarker = "/ad/"

// CollectListingLinks scans a search-results page for ad links and returns
// them as absolute URLs, query strings stripped, deduplicated in document
// order. The caller is responsible for having scrolled the page so that
// lazily loaded anchors are attached before the snapshot was taken.
func CollectListingLinks(html, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url %q: %w", pageURL, err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href*='/ad/']").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}
		abs, err := base.Parse(href)
		if err != nil {
			return
		}
		if !strings.Contains(abs.Path, ListingPathMarker) {
			return
		}
		abs.RawQuery = ""
		abs.Fragment = ""
		link := abs.String()
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}
