package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dubizzle-scraper/models"
)

// FromLinkedData resolves fields from the page's JSON-LD blocks. Blocks that
// fail to parse are skipped; malformed structured data is routine on this
// site. Top-level arrays are flattened into the object pool before lookup.
func FromLinkedData(snap models.PageSnapshot) models.ChannelData {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return models.ChannelData{}
	}

	var objs []map[string]any
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return
		}
		switch t := v.(type) {
		case []any:
			for _, e := range t {
				if m, ok := e.(map[string]any); ok {
					objs = append(objs, m)
				}
			}
		case map[string]any:
			objs = append(objs, t)
		}
	})

	return resolveLinkedData(objs)
}

func resolveLinkedData(objs []map[string]any) models.ChannelData {
	var out models.ChannelData

	out.Location = breadcrumbLocation(objs)

	vehicle := findByType(objs, "Car", "Vehicle", "Product")
	if vehicle != nil {
		out.Title = asText(vehicle["name"])
		if out.Title == "" {
			out.Title = asText(vehicle["model"])
		}
		out.Description = asText(vehicle["description"])
		out.CarType = vehicleBodyType(vehicle)
	}
	if out.Description == "" {
		if o := findWithKey(objs, "description"); o != nil {
			out.Description = asText(o["description"])
		}
	}

	var offer map[string]any
	if vehicle != nil {
		offer, _ = vehicle["offers"].(map[string]any)
	}
	if offer == nil {
		offer = findByType(objs, "Offer")
	}

	out.Name = sellerName(objs, vehicle, offer)
	out.Price = offerPrice(vehicle, offer)
	if out.Location == "" {
		out.Location = addressLocation(objs, vehicle, offer)
	}

	return out
}

// breadcrumbLocation reads the BreadcrumbList item names. The last two name
// the city and region; a single name is used as-is.
func breadcrumbLocation(objs []map[string]any) string {
	bc := findByType(objs, "BreadcrumbList")
	if bc == nil {
		return ""
	}
	items, ok := bc["itemListElement"].([]any)
	if !ok {
		return ""
	}

	var names []string
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name := asText(m["name"])
		if name == "" {
			if inner, ok := m["item"].(map[string]any); ok {
				name = asText(inner["name"])
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}

	switch {
	case len(names) >= 2:
		return strings.Join(names[len(names)-2:], ", ")
	case len(names) == 1:
		return names[0]
	}
	return ""
}

// sellerName resolves the seller from the vehicle, the offer, or any block
// carrying a seller/provider. Sellers appear both as plain strings and as
// nested objects.
func sellerName(objs []map[string]any, vehicle, offer map[string]any) string {
	var seller any
	if vehicle != nil {
		seller = vehicle["seller"]
	}
	if seller == nil && offer != nil {
		seller = offer["seller"]
	}
	if seller == nil {
		if o := findWithKey(objs, "seller"); o != nil {
			seller = o["seller"]
		}
	}
	if seller == nil {
		if o := findWithKey(objs, "provider"); o != nil {
			seller = o["provider"]
		}
	}

	switch s := seller.(type) {
	case string:
		return s
	case map[string]any:
		return asText(s["name"])
	}
	return ""
}

// offerPrice reads the offer (or vehicle) price, appending the currency
// code when the offer declares one.
func offerPrice(vehicle, offer map[string]any) string {
	var price string
	if offer != nil {
		price = asText(offer["price"])
	}
	if price == "" && vehicle != nil {
		price = asText(vehicle["price"])
	}
	if price == "" {
		return ""
	}
	if offer != nil {
		if cur := asText(offer["priceCurrency"]); cur != "" {
			return price + " " + cur
		}
	}
	return price
}

// vehicleBodyType prefers the explicit body type, then the configuration
// string, then a "brand model" join.
func vehicleBodyType(vehicle map[string]any) string {
	if bt := asText(vehicle["bodyType"]); bt != "" {
		return bt
	}
	if vc := asText(vehicle["vehicleConfiguration"]); vc != "" {
		return vc
	}
	return joinPresent(" ", nestedName(vehicle["brand"]), nestedName(vehicle["model"]))
}

// addressLocation flattens a postal address found on the vehicle, the offer
// (availableAtOrFrom), or any block carrying one.
func addressLocation(objs []map[string]any, vehicle, offer map[string]any) string {
	var addr map[string]any
	if vehicle != nil {
		addr, _ = vehicle["address"].(map[string]any)
	}
	if addr == nil && offer != nil {
		addr, _ = offer["availableAtOrFrom"].(map[string]any)
	}
	if addr == nil {
		if o := findWithKey(objs, "address"); o != nil {
			addr, _ = o["address"].(map[string]any)
		}
	}
	if addr == nil {
		return ""
	}
	return joinPresent(", ",
		asText(addr["addressLocality"]),
		asText(addr["addressRegion"]),
		nestedName(addr["addressCountry"]),
	)
}

// findByType returns the first object whose @type matches one of types.
func findByType(objs []map[string]any, types ...string) map[string]any {
	for _, o := range objs {
		t := asText(o["@type"])
		for _, want := range types {
			if t == want {
				return o
			}
		}
	}
	return nil
}

// findWithKey returns the first object that has a non-nil value under key.
func findWithKey(objs []map[string]any, key string) map[string]any {
	for _, o := range objs {
		if o[key] != nil {
			return o
		}
	}
	return nil
}

// nestedName accepts either a plain string or an object with a name field,
// the two shapes schema.org allows for brand, model, and country values.
func nestedName(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		return asText(t["name"])
	}
	return ""
}

// asText renders a JSON string or number as a string; anything else is "".
func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
