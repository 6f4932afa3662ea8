package media

import (
	"github.com/dmitrijs2005/cakeshop/internal/filex"
	"github.com/gabriel-vasile/mimetype"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// DownloadName is the file name offered for a listing's media:
// "<name>-cake<ext>" for images and "<name>-cake-video<ext>" for videos.
// The extension follows mimeType and falls back to .jpg or .mp4.
func DownloadName(listingName string, kind Kind, mimeType string) string {
	suffix, ext := "-cake", ".jpg"
	if kind == KindVideo {
		suffix, ext = "-cake-video", ".mp4"
	}
	if m := mimetype.Lookup(mimeType); m != nil && m.Extension() != "" {
		ext = m.Extension()
	}
	return filex.CleanName(listingName + suffix + ext)
}
