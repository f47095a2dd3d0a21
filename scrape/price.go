package scrape

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// number immediately followed by a Czech currency token in running text
var currencyAmount = regexp.MustCompile(`(\d{1,3}(?:[ \x{00A0}]\d{3})*(?:[.,]\d+)?) *(Kč|CZK)`)

// ExtractPrice runs the price cascade against the document, first match wins:
// a semantic itemprop marker, a currency-tagged amount in the page text, then
// any element with "price" in its class or id. A marker element terminates
// the cascade even when it yields nothing.
func ExtractPrice(doc *goquery.Document) *string {
	sel := doc.Find(`[itemprop="price"], meta[itemprop="price"]`).First()
	if sel.Length() > 0 {
		if goquery.NodeName(sel) == "meta" {
			content, ok := sel.Attr("content")
			if !ok {
				return nil
			}
			return NormalizePrice(content)
		}
		return NormalizePrice(getText(sel, " "))
	}

	if m := currencyAmount.FindString(getText(doc.Selection, " ")); m != "" {
		return NormalizePrice(m)
	}

	if sel := doc.Find(`[class*="price"], [id*="price"]`).First(); sel.Length() > 0 {
		return NormalizePrice(getText(sel, " "))
	}

	return nil
}
