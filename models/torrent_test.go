package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTorrentViews(t *testing.T) {
	dir := BuildDirectory([]Category{
		{ID: 1, Name: "Экшен", Slug: "action", Icon: "Sword"},
	})

	views := BuildTorrentViews([]Torrent{
		{ID: 1, Title: "Hades", Downloads: 1532, Size: 15, Category: []string{"action", "roguelike"}},
		{ID: 2, Title: "Rust", Downloads: 2400000, Size: 25.8},
	}, dir)
	require.Len(t, views, 2)

	// Known slug resolves, unknown one falls back to raw text + default icon
	require.Len(t, views[0].CategoryLabels, 2)
	assert.Equal(t, CategoryLabel{Slug: "action", Name: "Экшен", Icon: "Sword"}, views[0].CategoryLabels[0])
	assert.Equal(t, CategoryLabel{Slug: "roguelike", Name: "roguelike", Icon: DefaultCategoryIcon}, views[0].CategoryLabels[1])

	// Counters formatted the way the cards render them
	assert.Equal(t, "1.5K", views[0].DownloadsFormatted)
	assert.Equal(t, "15.0 GB", views[0].SizeFormatted)
	assert.Equal(t, "2.4M", views[1].DownloadsFormatted)
	assert.Empty(t, views[1].CategoryLabels)
}

func TestHasCategory(t *testing.T) {
	torrent := Torrent{Category: []string{"action", "indie"}}
	assert.True(t, torrent.HasCategory("indie"))
	assert.False(t, torrent.HasCategory("rpg"))
	assert.False(t, (&Torrent{}).HasCategory("action"))
}
