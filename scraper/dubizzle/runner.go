package dubizzle

import (
	"context"

	"dubizzle-scraper/config"
	"dubizzle-scraper/models"
	"dubizzle-scraper/utils"
)

// Runner walks the paginated search results, accumulates the run-scoped
// deduplicated link set, and extracts every listing strictly one at a time
// on the shared listing tab.
type Runner struct {
	scraper *Scraper
	cfg     *config.Config
}

func NewRunner(scraper *Scraper, cfg *config.Config) *Runner {
	return &Runner{scraper: scraper, cfg: cfg}
}

// Run traverses pages search-result pages and returns one record per unique
// listing link, in visitation order. A failed search page contributes no
// links; a failed listing contributes a record with only the link set. The
// ctx check at the loop boundary allows cooperative cancellation without
// changing extraction semantics.
func (r *Runner) Run(ctx context.Context, pages int) []models.Record {
	if pages < 1 {
		pages = 1
	}

	seen := make(map[string]bool)
	var links []string
	for p := 1; p <= pages; p++ {
		pageLinks, err := r.scraper.CollectSearchPageLinks(p)
		if err != nil {
			utils.Warn("Search page %d yielded no links: %v", p, err)
			continue
		}
		for _, l := range pageLinks {
			if !seen[l] {
				seen[l] = true
				links = append(links, l)
			}
		}
		utils.Info("Page %d: %d links (%d unique so far)", p, len(pageLinks), len(links))
	}

	var records []models.Record
	for _, link := range links {
		select {
		case <-ctx.Done():
			utils.Warn("Run cancelled after %d listings", len(records))
			return records
		default:
		}

		rec, err := r.scraper.ScrapeListing(link)
		if err != nil {
			utils.Warn("Listing failed, recording link only: %v", err)
			rec = models.Record{Link: link}
		} else {
			utils.Success("✓ %s | %s | %s", rec.CarType, rec.Price, rec.Location)
		}
		records = append(records, rec)

		if len(records)%r.cfg.PacingEvery == 0 {
			utils.Pause(ctx, r.cfg.PacingDelay)
		}
	}

	return records
}
