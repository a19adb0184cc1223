package vision

import (
	"fmt"
	"strings"

	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
)

// extractJSONObject returns the first balanced JSON object found in text.
// Braces inside string literals are ignored, so markdown fences and prose around
// the object are skipped. Raw control characters inside strings are escaped,
// since models sometimes emit literal newlines in string values.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", service.ErrNoJSONObject
	}

	var (
		out      strings.Builder
		depth    int
		inString bool
		escaped  bool
	)
	out.Grow(len(text) - start)

	for _, ch := range text[start:] {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			case ch < 0x20:
				out.WriteString(escapeControl(ch))

				continue
			}
			out.WriteRune(ch)

			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		}
		out.WriteRune(ch)

		if depth == 0 {
			return out.String(), nil
		}
	}

	return "", errors.Wrap(service.ErrMalformedJSON, "unterminated JSON object")
}

func escapeControl(ch rune) string {
	switch ch {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	default:
		return fmt.Sprintf(`\u%04x`, ch)
	}
}
