package models

import "github.com/pr-poehali-dev/torrent-game-platform/utils"

// DefaultCategoryIcon is used when a category carries no icon of its own,
// and for slugs that do not resolve against the category directory at all.
const DefaultCategoryIcon = "Folder"

// Category represents a named, iconized tag used for filtering and navigation.
// The slug is the stable key; count is maintained by the remote catalog
// service and is advisory only; it is never recomputed here.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Icon  string `json:"icon,omitempty"`
	Count int    `json:"count"`
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Экшен"`
	Slug string `json:"slug" binding:"required" example:"action"`
	Icon string `json:"icon" example:"Sword"`
}

// Directory indexes categories by slug for display resolution.
type Directory map[string]Category

// BuildDirectory builds a slug index over a category snapshot.
func BuildDirectory(categories []Category) Directory {
	dir := make(Directory, len(categories))
	for _, cat := range categories {
		dir[cat.Slug] = cat
	}
	return dir
}

// Resolve returns the display label for a slug. Unknown slugs render as the
// raw slug text with the fallback icon, never an error.
func (d Directory) Resolve(slug string) CategoryLabel {
	if cat, ok := d[slug]; ok {
		icon := cat.Icon
		if icon == "" {
			icon = DefaultCategoryIcon
		}
		return CategoryLabel{Slug: slug, Name: cat.Name, Icon: icon}
	}
	return CategoryLabel{Slug: slug, Name: slug, Icon: DefaultCategoryIcon}
}

// Labels resolves a list of slugs in order.
func (d Directory) Labels(slugs []string) []CategoryLabel {
	if len(slugs) == 0 {
		return nil
	}
	labels := make([]CategoryLabel, len(slugs))
	for i, slug := range slugs {
		labels[i] = d.Resolve(slug)
	}
	return labels
}

// BuildTorrentViews enriches torrents with resolved category labels and
// formatted counters for rendering, preserving order.
func BuildTorrentViews(torrents []Torrent, d Directory) []TorrentView {
	views := make([]TorrentView, len(torrents))
	for i, t := range torrents {
		views[i] = TorrentView{
			Torrent:            t,
			CategoryLabels:     d.Labels(t.Category),
			DownloadsFormatted: utils.FormatDownloads(t.Downloads),
			SizeFormatted:      utils.FormatSize(t.Size),
		}
	}
	return views
}
