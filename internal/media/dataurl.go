// Package media converts listing images and videos between files and the
// data URLs stored in the catalog, and exports them to a download sink.
package media

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/common"
	"github.com/gabriel-vasile/mimetype"
)

// Blob is decoded media.
type Blob struct {
	MIME string
	Data []byte
}

// EncodeFile reads path and returns it as a base64 data URL. The MIME type
// is sniffed from the content.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Encode(data), nil
}

func Encode(data []byte) string {
	return "data:" + baseType(mimetype.Detect(data).String()) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode parses a data URL. Both base64 and percent-encoded payloads are
// accepted; a missing media type reads as text/plain.
func Decode(dataURL string) (Blob, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return Blob{}, fmt.Errorf("%w: missing data: prefix", common.ErrMalformedDataURL)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Blob{}, fmt.Errorf("%w: missing comma", common.ErrMalformedDataURL)
	}

	meta, isBase64 := strings.CutSuffix(meta, ";base64")
	mimeType := baseType(meta)
	if mimeType == "" {
		mimeType = "text/plain"
	}

	var data []byte
	if isBase64 {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return Blob{}, fmt.Errorf("%w: %v", common.ErrMalformedDataURL, err)
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return Blob{}, fmt.Errorf("%w: %v", common.ErrMalformedDataURL, err)
		}
		data = []byte(s)
	}

	return Blob{MIME: mimeType, Data: data}, nil
}

// baseType drops parameters such as "; charset=utf-8".
func baseType(m string) string {
	t, _, _ := strings.Cut(m, ";")
	return strings.TrimSpace(t)
}
