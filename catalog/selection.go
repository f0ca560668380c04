// Package catalog implements the filter and search pipeline over the
// in-memory torrent snapshot: category multi-select with a Steam Deck
// toggle, live title search, and the URL query round-trip that makes a
// filtered view shareable.
//
// Everything here is synchronous and total: no function can fail, empty
// inputs degenerate to well-defined results, and input order is always
// preserved.
package catalog

// Selection is the current set of active filter criteria. The zero value
// is the empty selection (everything passes).
type Selection struct {
	categories map[string]struct{}
	order      []string

	SteamDeckOnly bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{categories: make(map[string]struct{})}
}

// Toggle adds the slug to the selected categories if absent, removes it if
// present. Toggling twice is a no-op.
func (s *Selection) Toggle(slug string) {
	if s.categories == nil {
		s.categories = make(map[string]struct{})
	}
	if _, ok := s.categories[slug]; ok {
		delete(s.categories, slug)
		for i, existing := range s.order {
			if existing == slug {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.categories[slug] = struct{}{}
	s.order = append(s.order, slug)
}

// Has reports whether the slug is currently selected.
func (s *Selection) Has(slug string) bool {
	_, ok := s.categories[slug]
	return ok
}

// Categories returns the selected slugs in insertion order. The slice is a
// copy; mutating it does not affect the selection.
func (s *Selection) Categories() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Clear resets the selection unconditionally: no categories, no Steam Deck
// toggle. The all-clear control in the UI is only shown while IsEmpty is
// false, but Clear itself is always safe to call.
func (s *Selection) Clear() {
	s.categories = make(map[string]struct{})
	s.order = nil
	s.SteamDeckOnly = false
}

// IsEmpty reports whether no criterion is active. It distinguishes the
// Empty and Filtered states of the selection lifecycle.
func (s *Selection) IsEmpty() bool {
	return len(s.categories) == 0 && !s.SteamDeckOnly
}
