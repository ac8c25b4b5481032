package tickets

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const idSuffixLen = 5

// NewTicketID returns TKT-<base36 millis>-<5 random base36 chars>, upper-cased.
// Uniqueness is probabilistic; collisions are not detected.
func NewTicketID(now time.Time) string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}

	return "TKT-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)) + "-" + string(suffix)
}
