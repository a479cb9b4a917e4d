// Package cardmarket generates deterministic link-out URLs to the
// secondary marketplace. No network calls are made and no prices are
// ever read from it.
package cardmarket

import (
	"net/url"
	"strings"
)

const baseURL = "https://www.cardmarket.com"

// SearchURL builds a product search link for a card. Language defaults
// to "en" when empty. All non-alphanumeric characters except spaces
// are stripped before the query is assembled.
func SearchURL(cardName, setName, language string) string {
	if language == "" {
		language = "en"
	}
	query := strings.Join(append(words(cardName), words(setName)...), " ")
	return baseURL + "/" + language + "/Pokemon/Products/Search?searchString=" + url.QueryEscape(query)
}

// ExpansionURL builds a set-level browse link, hyphen-joined instead
// of a search query string.
func ExpansionURL(setName, language string) string {
	if language == "" {
		language = "en"
	}
	return baseURL + "/" + language + "/Pokemon/Expansions/" + strings.Join(words(setName), "-")
}

// words strips everything but letters, digits and spaces, then splits
// on whitespace.
func words(s string) []string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}
