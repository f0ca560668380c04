package models

// Torrent is a single catalog entry as served by the remote catalog service.
// category holds zero or more category slugs; steamDeck, steamRating and
// metacriticScore are optional and absent for most entries, so the zero
// value must always be a valid reading ("no categories", "not verified").
type Torrent struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Poster          string   `json:"poster"`
	Downloads       int      `json:"downloads"`
	Size            float64  `json:"size"` // gigabytes
	Category        []string `json:"category"`
	Description     string   `json:"description"`
	SteamDeck       bool     `json:"steamDeck,omitempty"`
	SteamRating     *float64 `json:"steamRating,omitempty"`
	MetacriticScore *float64 `json:"metacriticScore,omitempty"`
}

// HasCategory reports whether the torrent is tagged with the given slug.
// A torrent without categories matches nothing.
func (t *Torrent) HasCategory(slug string) bool {
	for _, c := range t.Category {
		if c == slug {
			return true
		}
	}
	return false
}

// TorrentRequest is the payload for creating or updating a torrent.
type TorrentRequest struct {
	Title           string   `json:"title" binding:"required"`
	Poster          string   `json:"poster" binding:"required,url"`
	Downloads       int      `json:"downloads" binding:"min=0"`
	Size            float64  `json:"size" binding:"required,gt=0"`
	Category        []string `json:"category"`
	Description     string   `json:"description" binding:"required"`
	SteamDeck       bool     `json:"steamDeck"`
	SteamRating     *float64 `json:"steamRating,omitempty"`
	MetacriticScore *float64 `json:"metacriticScore,omitempty"`
}

// TorrentView is a torrent enriched with display data: category labels
// resolved from the directory, plus the formatted counters the cards show.
type TorrentView struct {
	Torrent
	CategoryLabels     []CategoryLabel `json:"categoryLabels,omitempty"`
	DownloadsFormatted string          `json:"downloadsFormatted"`
	SizeFormatted      string          `json:"sizeFormatted"`
}

// CategoryLabel resolves a category slug for rendering. Unknown slugs keep
// the raw slug as the name and fall back to the default icon.
type CategoryLabel struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
