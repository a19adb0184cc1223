package vision

import (
	"io"
	"log/slog"
)

var testImage = []byte{0xFF, 0xD8, 0xFF, 0xE0, 'j', 'p', 'e', 'g'}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}
