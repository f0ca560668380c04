package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "managed poster URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/torrtop/posters/abc123.jpg",
			want: "torrtop/posters/abc123",
		},
		{
			name: "managed poster without extension",
			url:  "https://res.cloudinary.com/demo/image/upload/torrtop/posters/abc123",
			want: "torrtop/posters/abc123",
		},
		{
			name: "external poster is never touched",
			url:  "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
			want: "",
		},
		{
			name: "cloudinary URL outside the poster folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/other/folder/abc.png",
			want: "",
		},
		{
			name: "folder with no file name",
			url:  "https://res.cloudinary.com/demo/image/upload/torrtop/posters/",
			want: "",
		},
		{
			name: "empty URL",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PosterPublicID(tt.url))
		})
	}
}
