package extract

import (
	"regexp"
	"strings"

	"dubizzle-scraper/models"
)

// hydratedMarker is the script global Dubizzle assigns right after the
// server-injected state blob. Its presence tells us the page carries
// hydrated data worth scanning.
const hydratedMarker = "window.webpackBundles"

// The hydrated blob is too large and too irregular to parse as JSON, so
// each field is a bounded regex lookup inside the fragment starting at
// "adOfTheDay". A miss is an empty string, never an error.
var (
	hydratedFragmentRe = regexp.MustCompile(`(?s)\{"adOfTheDay":.*?\};`)

	sellerNameRe     = regexp.MustCompile(`"contactInfo":\{[^}]*"name"\s*:\s*"([^"]+)"`)
	descriptionRe    = regexp.MustCompile(`(?s)"description"\s*:\s*"(.*?)",\s*"documentCount"`)
	formattedPriceRe = regexp.MustCompile(`"formattedValue_l1"\s*:\s*"([0-9.,]+)"\s*\}\]`)
	rawPriceRe       = regexp.MustCompile(`"price"\s*:\s*(\d+)`)
	cityRe           = regexp.MustCompile(`"location\.lvl2":\{[^}]*"name_l1"\s*:\s*"([^"]+)"`)
	regionRe         = regexp.MustCompile(`"location\.lvl1":\{[^}]*"name_l1"\s*:\s*"([^"]+)"`)
	bodyTypeRe       = regexp.MustCompile(`(?s)"Body Type".*?"formattedValue_l1"\s*:\s*"([^"]+)"`)
)

// FromHydratedState extracts fields from the server-injected state blob.
// Detail pages do not always carry one; when the marker or the fragment is
// missing the whole channel comes back empty.
func FromHydratedState(snap models.PageSnapshot) models.ChannelData {
	var out models.ChannelData

	if !strings.Contains(snap.HTML, hydratedMarker) {
		return out
	}
	frag := hydratedFragmentRe.FindString(snap.HTML)
	if frag == "" {
		return out
	}

	lookup := func(re *regexp.Regexp) string {
		if m := re.FindStringSubmatch(frag); m != nil {
			return m[1]
		}
		return ""
	}

	out.Name = lookup(sellerNameRe)
	out.Description = lookup(descriptionRe)

	out.Price = lookup(formattedPriceRe)
	if out.Price == "" {
		out.Price = lookup(rawPriceRe)
	}

	out.Location = joinPresent(", ", lookup(cityRe), lookup(regionRe))
	out.CarType = lookup(bodyTypeRe)

	return out
}
