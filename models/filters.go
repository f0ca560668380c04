package models

// CatalogResponse is the catalog page payload: the filtered listing view
// plus a summary of the filters that produced it.
type CatalogResponse struct {
	Torrents []TorrentView `json:"torrents"`
	Filters  FilterSummary `json:"filters"`
	Total    int           `json:"total"`
}

// FilterSummary echoes the applied filter selection back to the caller so
// the page can render the active criteria without reparsing the URL.
type FilterSummary struct {
	Categories    []CategoryLabel `json:"categories,omitempty"`
	SteamDeckOnly bool            `json:"steamDeckOnly,omitempty"`
	Active        bool            `json:"active"`
}

// SearchResponse is the search-results page payload.
type SearchResponse struct {
	Query    string        `json:"query"`
	Torrents []TorrentView `json:"torrents"`
	Total    int           `json:"total"`
}

// LiveSearchResponse is the header dropdown payload: at most five matches
// plus the link to the full search-results page for the same query.
type LiveSearchResponse struct {
	Query     string    `json:"query"`
	Results   []Torrent `json:"results"`
	SearchURL string    `json:"searchUrl,omitempty"`
}
