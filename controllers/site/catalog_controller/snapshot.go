package catalog_controller

import (
	"log"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// residentTorrents returns the torrent snapshot, attempting one reload when
// it is still empty (the startup warm-up failed or no load has happened
// yet). A failed reload is logged and the view gets the empty snapshot; it
// never fails the request.
func residentTorrents() []models.Torrent {
	torrents := catalog_cache.GetTorrents()
	if len(torrents) == 0 {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := services.ReloadTorrents(ctx); err != nil {
			log.Printf("[catalog] warm load failed: %v", err)
		}
		torrents = catalog_cache.GetTorrents()
	}
	return torrents
}
