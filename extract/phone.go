package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// phoneElementSelector matches anything that plausibly carries a phone
// number: tel links, WhatsApp links, and phone-styled elements.
const phoneElementSelector = "a[href^='tel:'], [href*='tel:'], [class*='phone'], [data-testid*='phone'], a[href*='wa.me']"

var (
	// Egyptian numbers: mobile with or without +20, and +20 2 landlines.
	egyptPhoneRe = regexp.MustCompile(`\+?20\s?1[0-9]{9}|01[0-9]{9}|\+20\s?2\s?\d{8}`)
	waLinkRe     = regexp.MustCompile(`wa\.me/(\d+)`)
)

// ScanPhone returns the first phone candidate on the page. Element-derived
// candidates win over matches scanned out of the visible text, and the text
// scan runs on digit-normalized input so Arabic-Indic numbers match too.
func ScanPhone(doc *goquery.Document, bodyText string) string {
	var candidates []string

	doc.Find(phoneElementSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if m := waLinkRe.FindStringSubmatch(href); m != nil {
			candidates = append(candidates, "+"+m[1])
			return
		}
		t := CollapseWhitespace(s.Text())
		if t == "" {
			t = href
		}
		t = strings.TrimPrefix(t, "tel:")
		if t != "" {
			candidates = append(candidates, t)
		}
	})

	normalized := NormalizeDigits(bodyText)
	candidates = append(candidates, egyptPhoneRe.FindAllString(normalized, -1)...)

	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
