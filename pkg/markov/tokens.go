package markov

import (
	"fmt"
	"strings"
)

// StartToken is the sentinel hidden and observed label preceding the
// first real token of every sequence. No corpus token may equal it.
const StartToken = "<<START>>"

// SplitToken splits a "surface:hidden" corpus token into its surface
// form and hidden label. The sentinel maps to (StartToken, StartToken).
// A token without a separator is a corpus format error; the corpus is
// corrupt and there is nothing sensible to repair it into.
func SplitToken(token string) (surface, hidden string, err error) {
	if token == StartToken {
		return StartToken, StartToken, nil
	}
	surface, hidden, ok := strings.Cut(token, ":")
	if !ok {
		return "", "", fmt.Errorf("token %q: %w", token, ErrBadToken)
	}
	return surface, hidden, nil
}

// splitWindow splits a window of corpus tokens into parallel surface
// and hidden slices.
func splitWindow(window []string) (surfaces, hiddens []string, err error) {
	surfaces = make([]string, len(window))
	hiddens = make([]string, len(window))
	for i, token := range window {
		surface, hidden, err := SplitToken(token)
		if err != nil {
			return nil, nil, err
		}
		surfaces[i] = surface
		hiddens[i] = hidden
	}
	return surfaces, hiddens, nil
}

// startContext returns the hidden context preceding the first window
// of a sequence: order copies of the sentinel, space-joined.
func startContext(order int) string {
	parts := make([]string, order)
	for i := range parts {
		parts[i] = StartToken
	}
	return strings.Join(parts, " ")
}

// writeWindow appends the surface:hidden token pairs of one window to
// the output, space-separating tokens as it goes.
func writeWindow(sb *strings.Builder, surface, hidden string) {
	surfaces := strings.Fields(surface)
	for i, h := range strings.Fields(hidden) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if i < len(surfaces) {
			sb.WriteString(surfaces[i])
		}
		sb.WriteByte(':')
		sb.WriteString(h)
	}
}
