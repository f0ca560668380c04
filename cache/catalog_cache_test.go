package catalog_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

func TestReplaceIsWholesale(t *testing.T) {
	t.Cleanup(Invalidate)
	Invalidate()

	first := BeginFetch()
	require.True(t, ReplaceTorrents(first, []models.Torrent{{ID: 1, Title: "Hades"}, {ID: 2, Title: "Rust"}}))

	second := BeginFetch()
	require.True(t, ReplaceTorrents(second, []models.Torrent{{ID: 3, Title: "Valheim"}}))

	got := GetTorrents()
	require.Len(t, got, 1)
	assert.Equal(t, "Valheim", got[0].Title, "no merging of the previous snapshot")
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	t.Cleanup(Invalidate)
	Invalidate()

	slow := BeginFetch()
	fast := BeginFetch()

	require.True(t, ReplaceTorrents(fast, []models.Torrent{{ID: 2, Title: "newer"}}))
	assert.False(t, ReplaceTorrents(slow, []models.Torrent{{ID: 1, Title: "older"}}),
		"a response from an earlier request must not overwrite a newer snapshot")

	got := GetTorrents()
	require.Len(t, got, 1)
	assert.Equal(t, "newer", got[0].Title)
}

func TestEmptyBeforeFirstLoad(t *testing.T) {
	Invalidate()
	assert.Empty(t, GetTorrents())
	assert.Empty(t, GetCategories())
	assert.NotNil(t, GetDirectory())
}

func TestDirectoryTracksCategorySnapshot(t *testing.T) {
	t.Cleanup(Invalidate)
	Invalidate()

	seq := BeginFetch()
	require.True(t, ReplaceCategories(seq, []models.Category{
		{ID: 1, Name: "Экшен", Slug: "action", Icon: "Sword"},
		{ID: 2, Name: "Инди", Slug: "indie"},
	}))

	dir := GetDirectory()
	assert.Equal(t, models.CategoryLabel{Slug: "action", Name: "Экшен", Icon: "Sword"}, dir.Resolve("action"))
	assert.Equal(t, models.CategoryLabel{Slug: "indie", Name: "Инди", Icon: models.DefaultCategoryIcon}, dir.Resolve("indie"),
		"missing icon falls back to the default")
	assert.Equal(t, models.CategoryLabel{Slug: "unknown", Name: "unknown", Icon: models.DefaultCategoryIcon}, dir.Resolve("unknown"),
		"unknown slugs render as raw text, never an error")
}
