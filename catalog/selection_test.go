package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleIsSelfInverse(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("action")
	sel.SteamDeckOnly = true

	sel.Toggle("rpg")
	sel.Toggle("rpg")

	assert.Equal(t, []string{"action"}, sel.Categories())
	assert.True(t, sel.SteamDeckOnly, "toggling a category never touches the Steam Deck flag")
}

func TestToggleTransitionsBetweenEmptyAndFiltered(t *testing.T) {
	sel := NewSelection()
	assert.True(t, sel.IsEmpty())

	sel.Toggle("indie")
	assert.False(t, sel.IsEmpty())

	// toggling away the last criterion returns to Empty
	sel.Toggle("indie")
	assert.True(t, sel.IsEmpty())
}

func TestSteamDeckAloneCountsAsFiltered(t *testing.T) {
	sel := NewSelection()
	sel.SteamDeckOnly = true
	assert.False(t, sel.IsEmpty())
}

func TestClearResetsUnconditionally(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("action")
	sel.Toggle("rpg")
	sel.SteamDeckOnly = true

	sel.Clear()

	assert.True(t, sel.IsEmpty())
	assert.Nil(t, sel.Categories())
	assert.False(t, sel.SteamDeckOnly)

	// clearing an already-empty selection is a no-op, not an error
	sel.Clear()
	assert.True(t, sel.IsEmpty())
}

func TestCategoriesReturnsInsertionOrderCopy(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("rpg")
	sel.Toggle("action")
	sel.Toggle("indie")
	sel.Toggle("action")

	cats := sel.Categories()
	assert.Equal(t, []string{"rpg", "indie"}, cats)

	cats[0] = "mutated"
	assert.Equal(t, []string{"rpg", "indie"}, sel.Categories())
}

func TestZeroValueSelectionIsUsable(t *testing.T) {
	var sel Selection
	assert.True(t, sel.IsEmpty())
	sel.Toggle("action")
	assert.True(t, sel.Has("action"))
}
