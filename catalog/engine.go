package catalog

import (
	"strings"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// LiveSearchLimit caps the header search dropdown at the first five matches
// in snapshot order; results are not relevance-ranked.
const LiveSearchLimit = 5

// ApplyFilters derives the displayed subset of the snapshot from the
// selection. Two stages compose by logical AND:
//
//  1. a non-empty category selection keeps torrents tagged with ANY of the
//     selected slugs (union, not intersection); an empty selection passes
//     everything through,
//  2. the Steam Deck toggle additionally requires steamDeck to be true;
//     torrents without the flag are excluded.
//
// Relative order of the input is preserved; the input slice is never
// mutated.
func ApplyFilters(torrents []models.Torrent, sel *Selection) []models.Torrent {
	if sel == nil || sel.IsEmpty() {
		return torrents
	}

	filtered := make([]models.Torrent, 0, len(torrents))
	for _, t := range torrents {
		if len(sel.order) > 0 && !matchesAny(&t, sel) {
			continue
		}
		if sel.SteamDeckOnly && !t.SteamDeck {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func matchesAny(t *models.Torrent, sel *Selection) bool {
	for _, slug := range t.Category {
		if sel.Has(slug) {
			return true
		}
	}
	return false
}

// LiveSearch returns up to LiveSearchLimit torrents whose title contains
// the query, case-insensitively, in snapshot order. A query that is empty
// after trimming yields nil, which is the signal to hide the result panel.
func LiveSearch(torrents []models.Torrent, query string) []models.Torrent {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []models.Torrent
	for _, t := range torrents {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			matches = append(matches, t)
			if len(matches) == LiveSearchLimit {
				break
			}
		}
	}
	return matches
}

// Search is the full-results variant used by the search page: the same
// case-insensitive title substring match, uncapped.
func Search(torrents []models.Torrent, query string) []models.Torrent {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var matches []models.Torrent
	for _, t := range torrents {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}
