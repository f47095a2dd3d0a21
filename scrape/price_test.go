package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestExtractPriceItemprop(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<span itemprop="price">1 234,50 Kč</span>
	</body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "1234.50", *got)
}

func TestExtractPriceMetaContent(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta itemprop="price" content="2 499,90">
	</head><body></body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "2499.90", *got)
}

func TestExtractPriceMarkerShortCircuits(t *testing.T) {
	// the semantic marker wins even when a price-classed element with a
	// different value exists further down the page
	doc := parseDoc(t, `<html><body>
		<span itemprop="price">100</span>
		<div class="price">999 Kč</div>
	</body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "100.00", *got)
}

func TestExtractPriceEmptyMarkerStopsCascade(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta itemprop="price">
	</head><body>
		<div class="price">999 Kč</div>
	</body></html>`)

	require.Nil(t, ExtractPrice(doc))
}

func TestExtractPriceCurrencyToken(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>Cena za kus: 1 234 Kč včetně DPH</p>
	</body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "1234.00", *got)
}

func TestExtractPriceClassFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="product-price-box">$ 12.50</div>
	</body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "12.50", *got)
}

func TestExtractPriceIDFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<span id="main-price">€99</span>
	</body></html>`)

	got := ExtractPrice(doc)
	require.NotNil(t, got)
	require.Equal(t, "99.00", *got)
}

func TestExtractPriceNothing(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>Kontaktujte nás</p></body></html>`)
	require.Nil(t, ExtractPrice(doc))
}
