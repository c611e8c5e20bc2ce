package dubizzle

import (
	"context"
	"fmt"
	"regexp"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"dubizzle-scraper/config"
)

// blockedThirdParty matches analytics/tracking hosts whose requests are
// aborted. Read-only; installed once per tab and never mutated during a run.
var blockedThirdParty = regexp.MustCompile(
	`(?i)(googletagmanager|google-analytics|doubleclick|hotjar|facebook|snap|taboola|clarity|sentry|mixpanel|segment|amplitude|criteo|yandex|twitter|bing)\.`,
)

// Heavy resources are never needed for extraction.
var blockedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeImage: true,
	network.ResourceTypeMedia: true,
	network.ResourceTypeFont:  true,
}

// installNetworkPolicy enables request interception on the tab and applies
// the session's locale and user-agent to every request. Blocked requests
// fail with BlockedByClient; everything else continues unmodified.
func installNetworkPolicy(ctx context.Context, cfg *config.Config) error {
	err := chromedp.Run(ctx,
		network.Enable(),
		fetch.Enable(),
		emulation.SetUserAgentOverride(cfg.UserAgent).
			WithAcceptLanguage(cfg.AcceptLanguage),
		network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": cfg.AcceptLanguage,
		}),
	)
	if err != nil {
		return fmt.Errorf("enable request interception: %w", err)
	}

	c := chromedp.FromContext(ctx)
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		e, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		// Interception callbacks must not block the event loop.
		go func() {
			execCtx := cdp.WithExecutor(ctx, c.Target)
			if blockedThirdParty.MatchString(e.Request.URL) || blockedResourceTypes[e.ResourceType] {
				_ = fetch.FailRequest(e.RequestID, network.ErrorReasonBlockedByClient).Do(execCtx)
				return
			}
			_ = fetch.ContinueRequest(e.RequestID).Do(execCtx)
		}()
	})

	return nil
}
