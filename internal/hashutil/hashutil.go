package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashStrings returns a SHA256 hash of the provided strings with newline separators.
func HashStrings(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// GameState digests the fields that move while a game is live. The store
// keeps it per row so unchanged snapshots are cheap to recognize.
func GameState(status string, period int, clock string, homeScore, awayScore int) string {
	return HashStrings(
		status,
		strconv.Itoa(period),
		clock,
		strconv.Itoa(homeScore),
		strconv.Itoa(awayScore),
	)
}
