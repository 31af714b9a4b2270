package catrunner

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBestKey is the logical key the best score is stored under.
const DefaultBestKey = "cat_runner_best_v1"

// KeyValueStore is the persistence the best score needs: string values
// under string keys.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MaxStore is implemented by stores that can raise an integer value in
// one atomic step. SetMax stores value only if it beats the current one
// and reports the stored value afterwards and whether value was written.
type MaxStore interface {
	SetMax(key string, value int) (stored int, raised bool, err error)
}

// BestScore reads and writes the persisted best score as a plain integer
// string. Several games may share one store; the stored value only grows.
type BestScore struct {
	kv  KeyValueStore
	key string
}

// NewBestScore binds a key-value store to a key. An empty key selects
// DefaultBestKey.
func NewBestScore(kv KeyValueStore, key string) *BestScore {
	if key == "" {
		key = DefaultBestKey
	}
	return &BestScore{kv: kv, key: key}
}

// Load returns the stored best. A missing value is 0 with no error; an
// unreadable or malformed value is 0 with an error the caller may report.
func (b *BestScore) Load() (int, error) {
	if b == nil || b.kv == nil {
		return 0, nil
	}
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return 0, fmt.Errorf("catrunner: cannot read best score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return parseBest(raw)
}

// Submit offers score as a new best. The store keeps the higher of score
// and what it already holds, which may have been written by another game
// since this one loaded. It returns the best after the merge and whether
// score is now the best.
func (b *BestScore) Submit(score int) (best int, raised bool, err error) {
	if b == nil || b.kv == nil {
		return score, true, nil
	}
	if ms, ok := b.kv.(MaxStore); ok {
		best, raised, err = ms.SetMax(b.key, score)
		if err != nil {
			return score, true, fmt.Errorf("catrunner: cannot save best score: %w", err)
		}
		return best, raised, nil
	}

	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return score, true, fmt.Errorf("catrunner: cannot read best score: %w", err)
	}
	if ok {
		// A malformed value counts as 0 and is overwritten.
		if stored, perr := parseBest(raw); perr == nil && stored >= score {
			return stored, false, nil
		}
	}
	if err := b.kv.Set(b.key, strconv.Itoa(score)); err != nil {
		return score, true, fmt.Errorf("catrunner: cannot save best score: %w", err)
	}
	return score, true, nil
}

func parseBest(raw string) (int, error) {
	best, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || best < 0 {
		return 0, fmt.Errorf("catrunner: ignoring invalid best score %q", raw)
	}
	return best, nil
}
