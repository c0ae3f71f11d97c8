// Package media turns local files and video URLs into element payloads.
// The document model itself never validates payloads; everything here runs
// before a payload reaches a draft.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxIngestBytes caps embedded media. Data URIs live inline in the shared
// catalog file, so oversized uploads would bloat every reader.
const maxIngestBytes = 8 << 20

var (
	// ErrUnsupportedType is returned for files that are neither image nor video.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrTooLarge is returned for files above the embed limit.
	ErrTooLarge = errors.New("media file too large")
)

// IngestFile reads a local media file and returns a self-contained data URI
// suitable as an image or video element payload.
func IngestFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}
	if info.Size() > maxIngestBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), maxIngestBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") && !strings.HasPrefix(mime, "video/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
