package llm

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DefaultImageMIME is assumed when a data URL does not name its media type.
const DefaultImageMIME = "image/jpeg"

var ErrEmptyImage = errors.New("image data is empty")

// DecodeDataURL decodes a base64 image that may carry a
// "data:<mime>;base64," prefix. It returns the bytes and the MIME type.
func DecodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	mime := ""
	if strings.HasPrefix(s, "data:") {
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				mime = meta[:semi]
			} else {
				mime = meta
			}
			s = s[idx+1:]
		}
	}
	if mime == "" {
		mime = DefaultImageMIME
	}
	if s == "" {
		return nil, "", ErrEmptyImage
	}

	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, mime, nil
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, "", err
	}
	return b, mime, nil
}
