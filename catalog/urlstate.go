package catalog

import (
	"net/url"
	"strings"
)

// Query parameter names shared between the catalog page and the URLs the
// filter panel produces. These are the only persisted representation of
// filter state.
const (
	ParamCategories = "categories"
	ParamSteamDeck  = "steamDeck"
	ParamQuery      = "q"
)

// SearchRoute is the search-results page. The page re-derives its results
// from the snapshot and the q parameter alone; no result set is handed
// over from the page that issued the search.
const SearchRoute = "/search"

// EncodeQuery serializes a selection into URL query values. Inactive
// criteria are omitted entirely: no empty categories parameter, no
// steamDeck=false.
func EncodeQuery(sel *Selection) url.Values {
	values := url.Values{}
	if sel == nil {
		return values
	}
	if cats := sel.Categories(); len(cats) > 0 {
		values.Set(ParamCategories, strings.Join(cats, ","))
	}
	if sel.SteamDeckOnly {
		values.Set(ParamSteamDeck, "true")
	}
	return values
}

// DecodeQuery parses filter state back out of URL query values. Empty
// comma segments are dropped, duplicate slugs collapse into one, steamDeck
// is true only for the exact string "true", and unknown parameters are
// ignored.
func DecodeQuery(values url.Values) *Selection {
	sel := NewSelection()
	if raw := values.Get(ParamCategories); raw != "" {
		for _, slug := range strings.Split(raw, ",") {
			if slug == "" || sel.Has(slug) {
				continue
			}
			sel.Toggle(slug)
		}
	}
	sel.SteamDeckOnly = values.Get(ParamSteamDeck) == "true"
	return sel
}

// SearchLink builds the shareable search-results URL for a raw free-text
// query, percent-encoding it into the q parameter.
func SearchLink(rawQuery string) string {
	values := url.Values{}
	values.Set(ParamQuery, rawQuery)
	return SearchRoute + "?" + values.Encode()
}
