package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// currency marker before or after a number with space/NBSP thousands
	// separators and a comma or dot decimal separator
	pricePattern = regexp.MustCompile(`([€$]|Kč|CZK)?\s*([+-]?\d{1,3}(?:[ \x{00A0}]\d{3})*(?:[.,]\d+)?)\s*(Kč|CZK|€|\$)?`)
	loosePattern = regexp.MustCompile(`[+-]?\d[\d \x{00A0}.,]*`)

	separatorCleaner = strings.NewReplacer("\u00a0", "", " ", "")
)

// NormalizePrice turns a free-form price fragment into a canonical
// two-decimal string. Returns nil for empty input, and the trimmed original
// text unchanged when no numeric candidate can be found. Never fails: when
// the normalized candidate does not parse as a float it is returned as-is.
func NormalizePrice(text string) *string {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}

	var num string
	if m := pricePattern.FindStringSubmatch(t); m != nil {
		num = m[2]
	} else if m := loosePattern.FindString(t); m != "" {
		num = m
	} else {
		return &t
	}

	norm := separatorCleaner.Replace(num)
	norm = strings.ReplaceAll(norm, ",", ".")

	val, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return &norm
	}
	out := fmt.Sprintf("%.2f", val)
	return &out
}
