package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var availabilityLabel = regexp.MustCompile(`(?i)Dostupnost\s*[:\-]?\s*([^\n\r]+)`)

// stock-status phrases recognized in running page text, tried in order
var availabilityKeywords = []string{
	"Skladem",
	"Vyprodáno",
	"Není skladem",
	"Do týdne",
	"Na objednávku",
	"Dostupné",
	"Available",
	"Out of stock",
	"In stock",
}

// ExtractAvailability runs the availability cascade: a semantic or class/id
// marker returned verbatim, then a "Dostupnost" label line, then the first
// known stock phrase with up to 40 characters of context on each side.
func ExtractAvailability(doc *goquery.Document) *string {
	sel := doc.Find(`[itemprop="availability"], [class*="availability"], [id*="availability"]`).First()
	if sel.Length() > 0 {
		t := getText(sel, " ")
		return &t
	}

	text := getText(doc.Selection, "\n")
	if m := availabilityLabel.FindStringSubmatch(text); m != nil {
		t := strings.TrimSpace(m[1])
		return &t
	}

	for _, kw := range availabilityKeywords {
		if !regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)).MatchString(text) {
			continue
		}
		window := regexp.MustCompile(`(?i).{0,40}` + regexp.QuoteMeta(kw) + `.{0,40}`)
		if m := window.FindString(text); m != "" {
			t := strings.TrimSpace(m)
			return &t
		}
		return &kw
	}

	return nil
}
