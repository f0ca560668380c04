package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAppID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://store.steampowered.com/app/1145360/Hades/", "1145360"},
		{"https://store.steampowered.com/app/1145360", "1145360"},
		{"https://steamcommunity.com/app/730", "730"},
		{"1145360", "1145360"},
		{"https://store.steampowered.com/bundle/123", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractAppID(tt.input), tt.input)
	}
}
