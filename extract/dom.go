package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"dubizzle-scraper/models"
)

// Selector probe lists, highest priority first. Dubizzle's class names are
// build hashes, so probes match on data-testid and class-name substrings.
var (
	nameSelectors = []string{
		"[data-testid='contact-name']",
		"[class*='contact'] h3",
		"[class*='contact'] .name",
		"[class*='Seller'] h3",
	}
	priceSelectors = []string{
		"[data-testid='price']",
		"[class*='price']",
		"[itemprop='price']",
	}
	locationSelectors = []string{
		"[data-testid='location']",
		"[class*='location']",
		"[itemprop='address']",
	}
	descriptionSelectors = []string{
		"[data-testid='description']",
		"[class*='description']",
	}

	// Spec-table labels preceding the body-type value, English and Arabic.
	bodyTypeLabels = []string{"Body Type", "نوع الهيكل", "هيكل السيارة"}
)

// FromDOM probes visible text and attributes for every field the richer
// channels may have missed. Each probe treats "no match" as absence.
func FromDOM(snap models.PageSnapshot) models.ChannelData {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return models.ChannelData{}
	}

	var out models.ChannelData
	out.Name = probeFirst(doc, nameSelectors)
	out.Price = probeFirst(doc, priceSelectors)
	out.Location = probeFirst(doc, locationSelectors)

	out.Description = probeFirst(doc, descriptionSelectors)
	if out.Description == "" {
		out.Description = metaContent(doc, "meta[name='description']")
	}

	out.CarType = bodyTypeFromLabel(doc)
	out.Phone = ScanPhone(doc, snap.BodyText)

	return out
}

// probeFirst returns the first selector's first match with non-empty text.
func probeFirst(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := CollapseWhitespace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// bodyTypeFromLabel finds the element whose own text carries a body-type
// label, walks up to the nearest row/item container, and reads the adjacent
// value cell.
func bodyTypeFromLabel(doc *goquery.Document) string {
	var bodyType string
	doc.Find("body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		own := ownText(s)
		if !containsAny(own, bodyTypeLabels) {
			return true
		}
		row := s.Closest("[class*='row'], [class*='item']")
		if row.Length() == 0 {
			return true
		}
		if val := CollapseWhitespace(row.Find("[class*='value']").First().Text()); val != "" {
			bodyType = val
			return false
		}
		return true
	})
	return bodyType
}

// ownText concatenates the selection's direct text nodes, excluding
// descendants, so label matching lands on the innermost element.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
