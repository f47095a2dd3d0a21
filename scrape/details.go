package scrape

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	maxSiblingWalk   = 8
	maxSpecTextHits  = 3
	maxFallbackItems = 50
)

var (
	headingPattern  = regexp.MustCompile(`(?i)podrobnost`)
	specTextPattern = regexp.MustCompile(`(?i)(specifikace|specification|parametr|parameters)`)

	headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}
)

// ExtractDetails recovers the specifications list from inconsistent markup.
// Heuristics run in a fixed order and the first one that yields entries wins:
// "podrobnosti" headings followed by a list or a short run of siblings, then
// text nodes naming a specification section with the nearest following list,
// then the first 50 list items anywhere on the page. Every path returns
// whitespace-collapsed, deduplicated entries in first-seen order.
func ExtractDetails(doc *goquery.Document) []string {
	if out := detailsFromHeadings(doc); len(out) > 0 {
		return out
	}
	if out := detailsFromSpecText(doc); len(out) > 0 {
		return out
	}

	var details []string
	doc.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		if i >= maxFallbackItems {
			return false
		}
		if t := getText(li, " "); t != "" {
			details = append(details, t)
		}
		return true
	})
	return postProcess(details)
}

func detailsFromHeadings(doc *goquery.Document) []string {
	for _, tag := range headingTags {
		var details []string
		doc.Find(tag).EachWithBreak(func(_ int, hdr *goquery.Selection) bool {
			if !headingPattern.MatchString(getText(hdr, " ")) {
				return true
			}

			next := hdr.Next()
			if name := goquery.NodeName(next); name == "ul" || name == "ol" {
				next.Find("li").Each(func(_ int, li *goquery.Selection) {
					if t := getText(li, " "); t != "" {
						details = append(details, t)
					}
				})
				if len(details) > 0 {
					return false
				}
			}

			// fallback: a few siblings following the heading
			sib := hdr
			for i := 0; i < maxSiblingWalk; i++ {
				sib = sib.Next()
				if sib.Length() == 0 {
					break
				}
				if t := getText(sib, " "); t != "" {
					details = append(details, t)
				}
			}
			return len(details) == 0
		})
		if len(details) > 0 {
			return postProcess(details)
		}
	}
	return nil
}

func detailsFromSpecText(doc *goquery.Document) []string {
	var flat []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		flat = append(flat, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Selection.Nodes {
		walk(root)
	}

	hits := 0
	for i, n := range flat {
		if n.Type != html.TextNode || !specTextPattern.MatchString(n.Data) {
			continue
		}
		hits++
		if hits > maxSpecTextHits {
			break
		}

		// nearest following list in document order
		for _, follow := range flat[i+1:] {
			if follow.Type != html.ElementNode || follow.Data != "ul" {
				continue
			}
			var details []string
			var items func(*html.Node)
			items = func(n *html.Node) {
				if n.Type == html.ElementNode && n.Data == "li" {
					if t := nodeText(n, " "); t != "" {
						details = append(details, t)
					}
				}
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					items(c)
				}
			}
			items(follow)
			if len(details) > 0 {
				return postProcess(details)
			}
			break
		}
	}
	return nil
}

// postProcess collapses internal whitespace, drops empty entries and
// deduplicates while preserving first-seen order.
func postProcess(details []string) []string {
	seen := make(map[string]struct{}, len(details))
	out := make([]string, 0, len(details))
	for _, d := range details {
		d = collapseSpace(d)
		if d == "" {
			continue
		}
		if _, exists := seen[d]; exists {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
