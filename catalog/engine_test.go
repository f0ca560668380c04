package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

func torrent(id int, title string, cats []string, steamDeck bool) models.Torrent {
	return models.Torrent{
		ID:        id,
		Title:     title,
		Category:  cats,
		SteamDeck: steamDeck,
	}
}

func titles(torrents []models.Torrent) []string {
	out := make([]string, 0, len(torrents))
	for _, t := range torrents {
		out = append(out, t.Title)
	}
	return out
}

func TestApplyFiltersEmptySelectionPassesEverything(t *testing.T) {
	snapshot := []models.Torrent{
		torrent(1, "Cyberpunk 2077", []string{"rpg"}, false),
		torrent(2, "Hades", []string{"indie"}, true),
		torrent(3, "Rust", nil, false),
	}

	got := ApplyFilters(snapshot, NewSelection())
	assert.Equal(t, snapshot, got, "empty selection must return the snapshot unchanged")

	got = ApplyFilters(snapshot, nil)
	assert.Equal(t, snapshot, got)
}

func TestApplyFiltersCategoryUnionNotIntersection(t *testing.T) {
	snapshot := []models.Torrent{
		torrent(1, "Elden Ring", []string{"rpg"}, false),
		torrent(2, "FIFA", []string{"sport"}, false),
	}

	sel := NewSelection()
	sel.Toggle("rpg")
	sel.Toggle("action")

	got := ApplyFilters(snapshot, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "Elden Ring", got[0].Title, "a torrent matching any selected slug passes")
}

func TestApplyFiltersSteamDeckStageIsStrict(t *testing.T) {
	snapshot := []models.Torrent{
		torrent(1, "Hades", []string{"indie"}, true),
		torrent(2, "Dead Cells", []string{"indie"}, false),
		torrent(3, "Stardew Valley", []string{"indie"}, false),
	}

	sel := NewSelection()
	sel.Toggle("indie")
	sel.SteamDeckOnly = true

	got := ApplyFilters(snapshot, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "Hades", got[0].Title, "steamDeck absent or false is excluded even on category match")
}

func TestApplyFiltersStagesComposeWithAnd(t *testing.T) {
	// 10 torrents, 3 tagged indie, 2 of those also Steam Deck verified.
	snapshot := []models.Torrent{
		torrent(1, "Cyberpunk 2077", []string{"rpg"}, true),
		torrent(2, "Hades", []string{"indie"}, true),
		torrent(3, "Elden Ring", []string{"rpg"}, false),
		torrent(4, "Vampire Survivors", []string{"indie"}, true),
		torrent(5, "Rust", []string{"multiplayer"}, false),
		torrent(6, "Dead Cells", []string{"indie"}, false),
		torrent(7, "FIFA", []string{"sport"}, false),
		torrent(8, "Valheim", []string{"multiplayer"}, true),
		torrent(9, "Counter-Strike 2", []string{"shooter"}, false),
		torrent(10, "God of War", []string{"action"}, false),
	}

	sel := NewSelection()
	sel.Toggle("indie")
	sel.SteamDeckOnly = true

	got := ApplyFilters(snapshot, sel)
	assert.Equal(t, []string{"Hades", "Vampire Survivors"}, titles(got))
}

func TestApplyFiltersPreservesOrderAndInput(t *testing.T) {
	snapshot := []models.Torrent{
		torrent(3, "C", []string{"action"}, false),
		torrent(1, "A", []string{"action"}, false),
		torrent(2, "B", []string{"rpg"}, false),
	}

	sel := NewSelection()
	sel.Toggle("action")

	got := ApplyFilters(snapshot, sel)
	assert.Equal(t, []string{"C", "A"}, titles(got), "stable filter, no re-sorting")
	assert.Equal(t, "C", snapshot[0].Title, "input slice untouched")
}

func TestApplyFiltersTorrentWithoutCategoriesNeverMatchesSelection(t *testing.T) {
	snapshot := []models.Torrent{torrent(1, "Mystery", nil, true)}

	sel := NewSelection()
	sel.Toggle("indie")

	assert.Empty(t, ApplyFilters(snapshot, sel))
}

func TestLiveSearchCaseInsensitiveCappedOrderPreserving(t *testing.T) {
	snapshot := []models.Torrent{
		torrent(1, "Alpha", nil, false),
		torrent(2, "alphabet", nil, false),
		torrent(3, "Beta", nil, false),
		torrent(4, "Alpharetta", nil, false),
		torrent(5, "Gamma", nil, false),
		torrent(6, "Alphorn", nil, false),
	}

	got := LiveSearch(snapshot, "alph")
	assert.Equal(t, []string{"Alpha", "alphabet", "Alpharetta", "Alphorn"}, titles(got))
}

func TestLiveSearchCapsAtFive(t *testing.T) {
	snapshot := make([]models.Torrent, 0, 8)
	for i := 1; i <= 8; i++ {
		snapshot = append(snapshot, torrent(i, "Portal", nil, false))
	}

	got := LiveSearch(snapshot, "port")
	assert.Len(t, got, LiveSearchLimit)
}

func TestLiveSearchBlankQueryYieldsNothing(t *testing.T) {
	snapshot := []models.Torrent{torrent(1, "Alpha", nil, false)}

	assert.Nil(t, LiveSearch(snapshot, ""))
	assert.Nil(t, LiveSearch(snapshot, "   "), "whitespace-only query hides the panel")
}

func TestSearchMatchesTitleOnly(t *testing.T) {
	snapshot := []models.Torrent{
		{ID: 1, Title: "Hades", Description: "roguelike about Zagreus"},
		{ID: 2, Title: "Zagreus Quest", Description: "unrelated"},
	}

	got := Search(snapshot, "zagreus")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID, "description never participates in matching")
}
