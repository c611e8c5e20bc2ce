package utils

import (
	"context"

	"github.com/chromedp/chromedp"
)

// StealthOpts returns ChromeDP browser launch options that hide automation.
//
// Key flags:
//   - disable-blink-features=AutomationControlled → removes navigator.webdriver flag
//   - headless=new → uses Chrome's newer headless mode (harder to detect)
//   - WindowSize → bots often have tiny/default windows; we set a normal size
//
// The user agent is fixed for the whole session so every request the site
// sees carries the same browser identity.
func StealthOpts(headless bool, userAgent string) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	}

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

// HideWebDriver injects JavaScript into the page to remove
// telltale signs of automation that site scripts look for.
//
// Even with the flags above, some sites run JS checks on the page itself.
// This patches those JS properties before any scraping happens.
func HideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return chromedp.Evaluate(`
			Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
			Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
			Object.defineProperty(navigator, 'languages', { get: () => ['ar-EG', 'ar', 'en'] });
		`, nil).Do(ctx)
	})
}
