package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nodeText flattens a node into the trimmed text of its text nodes joined by
// sep. Visible page text is read through this everywhere in the cascades.
func nodeText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}

func getText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		if t := nodeText(n, sep); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, sep)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
