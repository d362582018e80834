package memory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"starcast/internal/shared/events"
)

// UUIDIdentifiers is the default ID source for in-memory wiring.
type UUIDIdentifiers struct{}

func (UUIDIdentifiers) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// DisplayNameSlugifier is the default slug derivation: lowercase, runs of
// non-alphanumerics collapsed to single hyphens.
type DisplayNameSlugifier struct{}

func (DisplayNameSlugifier) Slugify(displayName string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(displayName)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func encodeEnvelope(envelope events.Envelope) ([]byte, error) {
	return json.Marshal(envelope)
}
