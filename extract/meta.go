package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dubizzle-scraper/models"
)

// FromMetaTags reads the Open Graph title/description and the product price
// meta attributes. This channel only ever supplies title, description, and
// price; the resolver consults it after hydrated state and JSON-LD.
func FromMetaTags(snap models.PageSnapshot) models.ChannelData {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return models.ChannelData{}
	}

	var out models.ChannelData
	out.Title = metaContent(doc, "meta[property='og:title']")
	out.Description = metaContent(doc, "meta[property='og:description']")
	out.Price = metaContent(doc, "meta[property='product:price:amount']")
	if out.Price == "" {
		out.Price = metaContent(doc, "meta[name='twitter:data1']")
	}
	return out
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
