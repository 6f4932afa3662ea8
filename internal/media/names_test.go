package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownloadName(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		kind    Kind
		mime    string
		want    string
	}{
		{name: "jpeg image", listing: "Chocolate", kind: KindImage, mime: "image/jpeg", want: "Chocolate-cake.jpg"},
		{name: "png image", listing: "Chocolate", kind: KindImage, mime: "image/png", want: "Chocolate-cake.png"},
		{name: "unknown image type", listing: "Chocolate", kind: KindImage, mime: "application/x-nope", want: "Chocolate-cake.jpg"},
		{name: "mp4 video", listing: "Vanilla", kind: KindVideo, mime: "video/mp4", want: "Vanilla-cake-video.mp4"},
		{name: "unknown video type", listing: "Vanilla", kind: KindVideo, mime: "", want: "Vanilla-cake-video.mp4"},
		{name: "separators", listing: "Half/Half", kind: KindImage, mime: "image/jpeg", want: "Half_Half-cake.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadName(tt.listing, tt.kind, tt.mime))
		})
	}
}
