package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("action")
	sel.Toggle("rpg")
	sel.SteamDeckOnly = true

	decoded := DecodeQuery(EncodeQuery(sel))

	assert.ElementsMatch(t, []string{"action", "rpg"}, decoded.Categories())
	assert.True(t, decoded.SteamDeckOnly)
}

func TestEncodeOmitsInactiveCriteria(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("indie")

	values := EncodeQuery(sel)
	assert.Equal(t, "indie", values.Get(ParamCategories))
	assert.False(t, values.Has(ParamSteamDeck), "steamDeck=false is never emitted")

	empty := EncodeQuery(NewSelection())
	assert.Empty(t, empty.Encode(), "empty selection produces an empty query string")
}

func TestDecodeDropsEmptySegmentsAndDuplicates(t *testing.T) {
	values, err := url.ParseQuery("categories=action,,rpg,action,&steamDeck=true")
	require.NoError(t, err)

	sel := DecodeQuery(values)
	assert.Equal(t, []string{"action", "rpg"}, sel.Categories())
	assert.True(t, sel.SteamDeckOnly)
}

func TestDecodeSteamDeckRequiresExactTrue(t *testing.T) {
	for _, raw := range []string{"steamDeck=1", "steamDeck=TRUE", "steamDeck=yes", "steamDeck=", ""} {
		values, err := url.ParseQuery(raw)
		require.NoError(t, err)
		assert.False(t, DecodeQuery(values).SteamDeckOnly, "raw query %q", raw)
	}
}

func TestDecodeIgnoresUnknownParameters(t *testing.T) {
	values, err := url.ParseQuery("categories=rpg&page=3&utm_source=share")
	require.NoError(t, err)

	sel := DecodeQuery(values)
	assert.Equal(t, []string{"rpg"}, sel.Categories())
	assert.False(t, sel.SteamDeckOnly)
}

func TestSearchLinkPercentEncodesQuery(t *testing.T) {
	link := SearchLink("red dead 2 & friends")
	assert.Equal(t, "/search?q=red+dead+2+%26+friends", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "red dead 2 & friends", parsed.Query().Get(ParamQuery))
}
