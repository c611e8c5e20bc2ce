package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dubizzle-scraper/models"
)

const domFallbackHTML = `<html><head>
<meta name="description" content="Fallback meta description">
</head><body>
<div class="contact-card"><h3>Omar Auto</h3></div>
<span data-testid="price">٣٥٠,٠٠٠ جنيه</span>
<div class="location-chip">Maadi, Cairo</div>
<div class="spec-row"><span>Body Type</span><span class="spec-value">SUV</span></div>
</body></html>`

func TestFromDOM(t *testing.T) {
	got := FromDOM(models.PageSnapshot{HTML: domFallbackHTML})

	assert.Equal(t, "Omar Auto", got.Name)
	assert.Equal(t, "٣٥٠,٠٠٠ جنيه", got.Price)
	assert.Equal(t, "Maadi, Cairo", got.Location)
	assert.Equal(t, "SUV", got.CarType)
	assert.Equal(t, "Fallback meta description", got.Description)
}

func TestFromDOMArabicBodyTypeLabel(t *testing.T) {
	html := `<body><div class="detail-item"><span>نوع الهيكل</span><div class="item-value">هاتشباك</div></div></body>`
	got := FromDOM(models.PageSnapshot{HTML: html})
	assert.Equal(t, "هاتشباك", got.CarType)
}

func TestFromDOMLabelWithoutContainer(t *testing.T) {
	// A label with no row/item ancestor yields nothing rather than a
	// wrong value from elsewhere on the page.
	html := `<body><span>Body Type</span><div class="spec-value">SUV</div></body>`
	got := FromDOM(models.PageSnapshot{HTML: html})
	assert.Empty(t, got.CarType)
}

func TestFromDOMEmptyPage(t *testing.T) {
	got := FromDOM(models.PageSnapshot{HTML: "<html><body></body></html>"})
	assert.Equal(t, models.ChannelData{}, got)
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestScanPhoneTelAnchor(t *testing.T) {
	doc := mustDoc(t, `<body><a href="tel:+201012345678"></a></body>`)
	assert.Equal(t, "+201012345678", ScanPhone(doc, ""))
}

func TestScanPhoneWhatsAppLink(t *testing.T) {
	doc := mustDoc(t, `<body><a href="https://wa.me/201098765432">WhatsApp</a></body>`)
	assert.Equal(t, "+201098765432", ScanPhone(doc, ""))
}

func TestScanPhoneFreeTextFallback(t *testing.T) {
	doc := mustDoc(t, `<body><p>call the seller</p></body>`)
	assert.Equal(t, "01012345678", ScanPhone(doc, "للتواصل 01012345678 بعد الظهر"))
}

func TestScanPhoneArabicIndicDigits(t *testing.T) {
	doc := mustDoc(t, `<body></body>`)
	assert.Equal(t, "01012345678", ScanPhone(doc, "اتصل: ٠١٠١٢٣٤٥٦٧٨"))
}

func TestScanPhoneLandline(t *testing.T) {
	doc := mustDoc(t, `<body></body>`)
	assert.Equal(t, "+20 2 23456789", ScanPhone(doc, "Office: +20 2 23456789"))
}

func TestScanPhoneElementBeatsFreeText(t *testing.T) {
	doc := mustDoc(t, `<body><a href="tel:+201055555555"></a></body>`)
	assert.Equal(t, "+201055555555", ScanPhone(doc, "also 01012345678 in text"))
}

func TestScanPhoneNothingFound(t *testing.T) {
	doc := mustDoc(t, `<body><p>no contact info</p></body>`)
	assert.Empty(t, ScanPhone(doc, "no numbers here"))
}
