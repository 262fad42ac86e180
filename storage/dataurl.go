package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDataURL is returned by DecodeDataURL for values that are not
// base64 data URLs.
var ErrMalformedDataURL = errors.New("storage: malformed data URL")

// EncodeDataURL renders data as "data:<mediaType>;base64,<payload>".
func EncodeDataURL(mediaType string, data []byte) []byte {
	prefix := "data:" + mediaType + ";base64,"
	out := make([]byte, len(prefix)+base64.StdEncoding.EncodedLen(len(data)))
	copy(out, prefix)
	base64.StdEncoding.Encode(out[len(prefix):], data)
	return out
}

// DecodeDataURL parses a base64 data URL and returns its media type and
// payload.
func DecodeDataURL(value []byte) (mediaType string, data []byte, err error) {
	s := string(value)
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: scheme", ErrMalformedDataURL)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrMalformedDataURL)
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrMalformedDataURL)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformedDataURL, err)
	}
	return mediaType, data, nil
}
