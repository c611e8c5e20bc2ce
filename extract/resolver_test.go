package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dubizzle-scraper/models"
)

const listingURL = "https://www.dubizzle.com.eg/ad/toyota-corolla-2020-ID123.html"

// precedenceHTML exposes a price through both the hydrated blob (500,000)
// and a JSON-LD offer (111111); the hydrated value must win.
const precedenceHTML = `<html><head>
<script>
var s = {"adOfTheDay":null,"price":[{"formattedValue_l1":"500,000"}],"x":1};
window.webpackBundles = [];
</script>
<script type="application/ld+json">
{"@type":"Vehicle","name":"Toyota Corolla 2020","offers":{"price":"111111","priceCurrency":"EGP"}}
</script>
</head><body></body></html>`

func TestResolvePrecedenceHydratedBeatsLinkedData(t *testing.T) {
	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: precedenceHTML})
	assert.Equal(t, "500,000", rec.Price)
}

func TestResolveVehicleLinkedDataFixture(t *testing.T) {
	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: vehicleLDHTML})

	assert.Equal(t, "350000 EGP", rec.Price)
	assert.Equal(t, "Cairo, Cairo Governorate", rec.Location)
	assert.Equal(t, "Toyota Corolla 2020", rec.CarType, "car type falls back to the ad title")
	assert.Equal(t, Sentinel, rec.Name, "no seller anywhere")
	assert.Equal(t, listingURL, rec.Link)
}

func TestResolveSentinelGuarantee(t *testing.T) {
	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: "<html><body></body></html>"})

	assert.Equal(t, Sentinel, rec.Name)
	assert.Equal(t, Sentinel, rec.Phone)
	assert.Equal(t, Sentinel, rec.Price)
	assert.Equal(t, Sentinel, rec.Location)
	assert.Equal(t, Sentinel, rec.CarType)
	assert.Equal(t, Sentinel, rec.Description)
	assert.Equal(t, listingURL, rec.Link, "link is never sentineled")
	assert.Equal(t, 0, rec.ResolvedFields)
}

func TestResolvePhoneFromBodyText(t *testing.T) {
	rec := Resolve(models.PageSnapshot{
		URL:      listingURL,
		HTML:     "<html><body><p>contact below</p></body></html>",
		BodyText: "Seller available at 01012345678 daily",
	})
	assert.Equal(t, "01012345678", rec.Phone)
}

func TestResolveCollapsesWhitespace(t *testing.T) {
	html := `<body><div class="location-box">  Maadi,
	 Cairo  </div></body>`
	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: html})
	assert.Equal(t, "Maadi, Cairo", rec.Location)
}

func TestResolveCountsResolvedFields(t *testing.T) {
	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: vehicleLDHTML})
	// price, location, car type resolved; name, phone, description sentinel.
	assert.Equal(t, 3, rec.ResolvedFields)
}

func TestResolveMetaChannel(t *testing.T) {
	html := `<html><head>
	<meta property="og:title" content="Nissan Sunny 2019">
	<meta property="og:description" content="Low mileage, automatic">
	<meta property="product:price:amount" content="420000">
	</head><body></body></html>`

	rec := Resolve(models.PageSnapshot{URL: listingURL, HTML: html})
	assert.Equal(t, "420000", rec.Price)
	assert.Equal(t, "Low mileage, automatic", rec.Description)
	assert.Equal(t, "Nissan Sunny 2019", rec.CarType, "meta title is the car type fallback")
}
