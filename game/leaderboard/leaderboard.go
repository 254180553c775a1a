package leaderboard

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Capacity is the number of entries kept
	Capacity = 5
	// DateLayout formats entry timestamps in local time
	DateLayout = "2006/01/02 15:04:05"
)

// Entry is one recorded game result
type Entry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
	Run   string `json:"run,omitempty"`
}

// Store persists the ordered entry list
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// Leaderboard keeps the best Capacity scores, highest first.
// Ties keep insertion order.
type Leaderboard struct {
	mu      sync.RWMutex
	entries []Entry
	store   Store
	log     zerolog.Logger
}

// Load reads the board from store once. Unreadable or malformed data is logged and ignored.
func Load(store Store, log zerolog.Logger) *Leaderboard {
	lb := &Leaderboard{store: store, log: log}
	if store == nil {
		return lb
	}

	entries, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard unavailable, starting empty")
		return lb
	}
	lb.entries = sanitize(entries)
	log.Debug().Int("entries", len(lb.entries)).Msg("leaderboard loaded")
	return lb
}

func sanitize(entries []Entry) []Entry {
	out := make([]Entry, 0, min(len(entries), Capacity))
	for _, e := range entries {
		if e.Score < 0 {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// Record inserts a result and persists the board. The entry is kept in memory even when saving fails.
func (lb *Leaderboard) Record(score int, at time.Time, run string) (Entry, error) {
	entry := Entry{Score: score, Date: at.Local().Format(DateLayout), Run: run}

	lb.mu.Lock()
	lb.entries = append(lb.entries, entry)
	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Score > lb.entries[j].Score
	})
	if len(lb.entries) > Capacity {
		lb.entries = lb.entries[:Capacity]
	}
	snapshot := append([]Entry(nil), lb.entries...)
	lb.mu.Unlock()

	if lb.store == nil {
		return entry, nil
	}
	if err := lb.store.Save(snapshot); err != nil {
		return entry, fmt.Errorf("save leaderboard: %w", err)
	}
	return entry, nil
}

// Top returns up to n entries, best first
func (lb *Leaderboard) Top(n int) []Entry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	n = max(0, min(n, len(lb.entries)))
	return append([]Entry(nil), lb.entries[:n]...)
}

// Entries returns a copy of the whole board
func (lb *Leaderboard) Entries() []Entry {
	return lb.Top(Capacity)
}

// Best returns the highest recorded score, or 0
func (lb *Leaderboard) Best() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if len(lb.entries) == 0 {
		return 0
	}
	return lb.entries[0].Score
}
