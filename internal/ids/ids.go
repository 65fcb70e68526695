// Package ids generates technology identifiers.
package ids

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefix       = "tech_"
	suffixLength = 9
)

// New returns an identifier of the form tech_<unix-millis>_<random>.
// The random suffix comes from a v4 UUID, so ids minted in the same
// millisecond still differ.
func New() string {
	return NewAt(time.Now())
}

// NewAt is New with an explicit timestamp
func NewAt(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}

// Generator produces ids
type Generator func() string

// Unique wraps gen so it never returns an id for which taken reports true.
// Ids it hands out are added to the taken set.
func Unique(gen Generator, taken map[string]struct{}) Generator {
	return func() string {
		for {
			id := gen()
			if _, exists := taken[id]; !exists {
				taken[id] = struct{}{}
				return id
			}
		}
	}
}
