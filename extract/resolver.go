package extract

import (
	"dubizzle-scraper/models"
)

// Sentinel fills any output field no channel could resolve, so every CSV
// column in a processed record is non-empty.
const Sentinel = "-"

// Resolve runs all four channels against one page snapshot and merges their
// partial results. Per-field precedence is fixed: hydrated state, JSON-LD,
// meta tags (title/price/description only), visible DOM, then for the car
// type the resolved ad title, then the sentinel. Channels never see each
// other's output; precedence lives entirely here.
func Resolve(snap models.PageSnapshot) models.Record {
	hydrated := FromHydratedState(snap)
	linked := FromLinkedData(snap)
	meta := FromMetaTags(snap)
	dom := FromDOM(snap)

	title := first(linked.Title, meta.Title)

	rec := models.Record{
		Name:        first(hydrated.Name, linked.Name, dom.Name),
		Phone:       first(dom.Phone),
		Price:       first(hydrated.Price, linked.Price, meta.Price, dom.Price),
		Location:    first(hydrated.Location, linked.Location, dom.Location),
		CarType:     first(hydrated.CarType, linked.CarType, dom.CarType, title),
		Description: first(hydrated.Description, linked.Description, meta.Description, dom.Description),
		Link:        snap.URL,
	}

	for _, f := range []*string{
		&rec.Name, &rec.Phone, &rec.Price,
		&rec.Location, &rec.CarType, &rec.Description,
	} {
		if *f == "" {
			*f = Sentinel
		} else {
			rec.ResolvedFields++
		}
	}

	return rec
}

// first returns the first candidate that is non-empty after whitespace
// collapsing.
func first(candidates ...string) string {
	for _, c := range candidates {
		if v := CollapseWhitespace(c); v != "" {
			return v
		}
	}
	return ""
}
