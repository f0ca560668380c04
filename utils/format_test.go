package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDownloads(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1532, "1.5K"},
		{45000, "45K"},
		{999999, "1000K"},
		{1000000, "1M"},
		{2400000, "2.4M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDownloads(tt.count), "count=%d", tt.count)
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "65.2 GB", FormatSize(65.2))
	assert.Equal(t, "0.5 GB", FormatSize(0.5))
	assert.Equal(t, "120.0 GB", FormatSize(120))
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"action", "open-world", "rpg2", "co-op-games"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "Action", "open_world", "-action", "action-", "two--hyphens", "a,b", "экшен"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}
