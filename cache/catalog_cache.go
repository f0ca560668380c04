package catalog_cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// ── Snapshot semantics ───────────────────────────────────────────────────────
// Every refresh replaces the snapshot wholesale; there is no incremental
// merge or optimistic patching. A failed fetch leaves the previous snapshot
// (or the empty one, before first load) in place. Overlapping refreshes are
// ordered by a monotonic sequence: a response carrying an older sequence
// than the last applied one is discarded instead of overwriting newer data.

var fetchSeq atomic.Uint64

// BeginFetch reserves a sequence number for a refresh about to be issued.
// Pass it to the matching Replace call once the response arrives.
func BeginFetch() uint64 {
	return fetchSeq.Add(1)
}

// ── Torrent snapshot ─────────────────────────────────────────────────────────

type torrentEntry struct {
	data      []models.Torrent
	fetchedAt time.Time
	seq       uint64
}

var (
	torrentMu    sync.RWMutex
	torrentCache torrentEntry
)

// GetTorrents returns the resident torrent snapshot, possibly empty before
// the first successful load.
func GetTorrents() []models.Torrent {
	torrentMu.RLock()
	defer torrentMu.RUnlock()
	return torrentCache.data
}

// ReplaceTorrents swaps in a freshly fetched snapshot. Returns false when a
// newer response has already been applied; the caller's data is dropped.
func ReplaceTorrents(seq uint64, data []models.Torrent) bool {
	torrentMu.Lock()
	defer torrentMu.Unlock()
	if seq < torrentCache.seq {
		return false
	}
	torrentCache = torrentEntry{data: data, fetchedAt: time.Now(), seq: seq}
	return true
}

// ── Category snapshot ────────────────────────────────────────────────────────

type categoryEntry struct {
	data      []models.Category
	directory models.Directory
	fetchedAt time.Time
	seq       uint64
}

var (
	categoryMu    sync.RWMutex
	categoryCache categoryEntry
)

// GetCategories returns the resident category snapshot.
func GetCategories() []models.Category {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	return categoryCache.data
}

// GetDirectory returns the slug index over the category snapshot. It is
// never nil, so unknown-slug resolution works before the first load too.
func GetDirectory() models.Directory {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache.directory == nil {
		return models.Directory{}
	}
	return categoryCache.directory
}

// ReplaceCategories swaps in a freshly fetched category snapshot and
// rebuilds the slug directory. Stale responses are discarded.
func ReplaceCategories(seq uint64, data []models.Category) bool {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	if seq < categoryCache.seq {
		return false
	}
	categoryCache = categoryEntry{
		data:      data,
		directory: models.BuildDirectory(data),
		fetchedAt: time.Now(),
		seq:       seq,
	}
	return true
}

// ── Invalidate everything (used by tests and on logout teardown) ─────────────

func Invalidate() {
	torrentMu.Lock()
	torrentCache = torrentEntry{}
	torrentMu.Unlock()

	categoryMu.Lock()
	categoryCache = categoryEntry{}
	categoryMu.Unlock()
}
