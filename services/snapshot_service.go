package services

import (
	"context"
	"log"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
)

// ════════════════════════════════════════════════════════════
// Snapshot Refresh
// ════════════════════════════════════════════════════════════
// Mutations never patch the resident snapshot. The flow is always
// invalidate-and-reload: issue the write, then refetch the whole affected
// collection and swap it in. The sequence number reserved before the fetch
// keeps an overlapping, slower refresh from clobbering a newer one.

// ReloadTorrents refetches the torrent collection and replaces the cached
// snapshot.
func ReloadTorrents(ctx context.Context) error {
	seq := catalog_cache.BeginFetch()
	torrents, err := GetCatalogAPI().FetchTorrents(ctx)
	if err != nil {
		return err
	}
	if !catalog_cache.ReplaceTorrents(seq, torrents) {
		log.Printf("[snapshot] torrent refresh %d superseded, dropped", seq)
	}
	return nil
}

// ReloadCategories refetches the category collection and replaces the
// cached snapshot along with its slug directory.
func ReloadCategories(ctx context.Context) error {
	seq := catalog_cache.BeginFetch()
	categories, err := GetCatalogAPI().FetchCategories(ctx)
	if err != nil {
		return err
	}
	if !catalog_cache.ReplaceCategories(seq, categories) {
		log.Printf("[snapshot] category refresh %d superseded, dropped", seq)
	}
	return nil
}
