package dubizzle

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"dubizzle-scraper/config"
	"dubizzle-scraper/extract"
	"dubizzle-scraper/models"
	"dubizzle-scraper/utils"
)

// Scraper owns one Chrome session with two tabs: one for search-results
// pages and one reused sequentially for every listing. The two tabs are
// never driven concurrently; a tab has a single active document.
type Scraper struct {
	cfg *config.Config

	allocCancel   context.CancelFunc
	searchCtx     context.Context
	searchCancel  context.CancelFunc
	listingCtx    context.Context
	listingCancel context.CancelFunc
}

// NewScraper launches Chrome, opens both tabs, and installs the network
// policy on each. A launch failure here is the only fatal error class.
func NewScraper(cfg *config.Config) (*Scraper, error) {
	utils.Info("Launching Chrome browser...")

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.StealthOpts(cfg.Headless, cfg.UserAgent)...,
	)

	searchCtx, searchCancel := chromedp.NewContext(allocCtx)
	// Run with no actions forces the browser to start now, so launch
	// failures surface here instead of on the first navigation.
	if err := chromedp.Run(searchCtx); err != nil {
		searchCancel()
		allocCancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	listingCtx, listingCancel := chromedp.NewContext(searchCtx)
	if err := chromedp.Run(listingCtx); err != nil {
		listingCancel()
		searchCancel()
		allocCancel()
		return nil, fmt.Errorf("open listing tab: %w", err)
	}

	s := &Scraper{
		cfg:           cfg,
		allocCancel:   allocCancel,
		searchCtx:     searchCtx,
		searchCancel:  searchCancel,
		listingCtx:    listingCtx,
		listingCancel: listingCancel,
	}

	for _, tab := range []context.Context{searchCtx, listingCtx} {
		if err := installNetworkPolicy(tab, cfg); err != nil {
			s.Close()
			return nil, err
		}
	}

	utils.Success("Browser ready")
	return s, nil
}

func (s *Scraper) Close() {
	utils.Info("Closing browser...")
	s.listingCancel()
	s.searchCancel()
	s.allocCancel()
}

// CollectSearchPageLinks loads search-results page pageNum, scrolls to
// attach lazily loaded cards, and returns the page's listing links. A wait
// timeout means the page contributes nothing; the caller continues the run.
func (s *Scraper) CollectSearchPageLinks(pageNum int) ([]string, error) {
	pageURL := s.cfg.BaseURL
	if pageNum > 1 {
		pageURL = fmt.Sprintf("%s?page=%d", s.cfg.BaseURL, pageNum)
	}

	navCtx, cancel := context.WithTimeout(s.searchCtx, s.cfg.RequestTimeout)
	defer cancel()
	if err := chromedp.Run(navCtx,
		chromedp.Navigate(pageURL),
		utils.HideWebDriver(),
	); err != nil {
		return nil, fmt.Errorf("navigate search page %d: %w", pageNum, err)
	}

	waitCtx, cancelWait := context.WithTimeout(s.searchCtx, s.cfg.LinkWaitTimeout)
	defer cancelWait()
	if err := chromedp.Run(waitCtx,
		chromedp.WaitReady(`a[href*='/ad/']`, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("no ad links attached on page %d: %w", pageNum, err)
	}

	var html string
	snapCtx, cancelSnap := context.WithTimeout(s.searchCtx, s.cfg.RequestTimeout)
	defer cancelSnap()
	actions := []chromedp.Action{}
	for i := 0; i < 4; i++ {
		actions = append(actions,
			chromedp.Evaluate(`window.scrollBy(0, 2000)`, nil),
			chromedp.Sleep(400*time.Millisecond),
		)
	}
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	if err := chromedp.Run(snapCtx, actions...); err != nil {
		return nil, fmt.Errorf("snapshot search page %d: %w", pageNum, err)
	}

	return extract.CollectListingLinks(html, pageURL)
}

// ScrapeListing loads one ad page on the reused listing tab, tries to
// reveal the hidden phone number, snapshots the page, and resolves the
// record. Navigation and snapshot failures propagate; the runner turns them
// into a link-only record.
func (s *Scraper) ScrapeListing(link string) (models.Record, error) {
	navCtx, cancel := context.WithTimeout(s.listingCtx, s.cfg.RequestTimeout)
	defer cancel()
	if err := chromedp.Run(navCtx,
		chromedp.Navigate(link),
		utils.HideWebDriver(),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return models.Record{}, fmt.Errorf("navigate %s: %w", link, err)
	}

	s.revealPhone()

	var html, bodyText string
	snapCtx, cancelSnap := context.WithTimeout(s.listingCtx, s.cfg.RequestTimeout)
	defer cancelSnap()
	if err := chromedp.Run(snapCtx,
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.Evaluate(`document.body.innerText || ""`, &bodyText),
	); err != nil {
		return models.Record{}, fmt.Errorf("snapshot %s: %w", link, err)
	}

	snap := models.PageSnapshot{URL: link, HTML: html, BodyText: bodyText}
	return extract.Resolve(snap), nil
}

// revealSelectors are tried first; the text-pattern click covers buttons
// the hashed class names miss, in English and Arabic.
var revealSelectors = []string{
	"button[aria-label*='phone']",
	"._06ac9027 button",
}

const revealByTextJS = `(() => {
	const re = /(Show Phone|Show Number|Call|رقم الهاتف|عرض الهاتف|اتصال|إظهار)/;
	const els = Array.from(document.querySelectorAll('button, [role="button"]'));
	for (const el of els) {
		if (re.test(el.innerText || '')) {
			el.click();
			return true;
		}
	}
	return false;
})()`

// revealPhone clicks the "show phone" control when one exists. Every
// attempt is bounded by the probe timeout and failure is tolerated: the
// number may already be visible, or the page may not gate it at all.
func (s *Scraper) revealPhone() {
	clicked := false
	for _, sel := range revealSelectors {
		probeCtx, cancel := context.WithTimeout(s.listingCtx, s.cfg.ProbeTimeout)
		err := chromedp.Run(probeCtx, chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible))
		cancel()
		if err == nil {
			clicked = true
			break
		}
	}

	if !clicked {
		probeCtx, cancel := context.WithTimeout(s.listingCtx, s.cfg.ProbeTimeout)
		_ = chromedp.Run(probeCtx, chromedp.Evaluate(revealByTextJS, &clicked))
		cancel()
	}

	if clicked {
		// Let the revealed number render before the snapshot.
		settleCtx, cancel := context.WithTimeout(s.listingCtx, s.cfg.ProbeTimeout)
		_ = chromedp.Run(settleCtx, chromedp.Sleep(500*time.Millisecond))
		cancel()
	}
}
