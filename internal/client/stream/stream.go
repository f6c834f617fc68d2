// Package stream keeps the client's visible list of recent records. Records
// arrive from three places (the generate response, the push feed and the
// history endpoint) and are reconciled by uuid so each insertion appears
// exactly once, newest first.
package stream

import (
	"sort"
	"sync"

	"github.com/dmitrijs2005/uuidfeed/internal/client/models"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
)

// MaxEntries caps the visible list; the oldest entries are evicted.
const MaxEntries = 50

// Labels shown next to each entry.
const (
	LabelSystem = "System"
	LabelYou    = "You"
	LabelGift   = "Gift"
	LabelOther  = "Other User"
)

// Merge returns entries with rec prepended, truncated to limit. If an entry
// with the same uuid is already present entries is returned unchanged and
// added is false. The input slice is never modified.
func Merge(entries []models.Record, rec models.Record, limit int) ([]models.Record, bool) {
	for _, e := range entries {
		if e.UUID == rec.UUID {
			return entries, false
		}
	}

	n := len(entries) + 1
	if limit > 0 && n > limit {
		n = limit
	}

	out := make([]models.Record, 0, n)
	out = append(out, rec)
	out = append(out, entries[:n-1]...)
	return out, true
}

// Label names the origin of rec from the point of view of sessionID.
func Label(rec models.Record, sessionID string) string {
	switch {
	case rec.ClientID == common.SystemClientID:
		return LabelSystem
	case rec.ClientID == sessionID && rec.IsGift:
		return LabelGift
	case rec.ClientID == sessionID:
		return LabelYou
	default:
		return LabelOther
	}
}

// Stream is a concurrency-safe, bounded, de-duplicated record list.
type Stream struct {
	mu      sync.Mutex
	entries []models.Record
	limit   int
}

// New returns an empty Stream holding at most limit entries; limit <= 0
// means MaxEntries.
func New(limit int) *Stream {
	if limit <= 0 {
		limit = MaxEntries
	}
	return &Stream{limit: limit}
}

// Add puts rec at the top unless its uuid is already listed. It reports
// whether the list changed.
func (s *Stream) Add(rec models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added bool
	s.entries, added = Merge(s.entries, rec, s.limit)
	return added
}

// Load merges a history snapshot into the list: the union of both, keyed
// by uuid, sorted newest first by created_at then id.
func (s *Stream) Load(records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.entries)+len(records))
	merged := make([]models.Record, 0, len(s.entries)+len(records))

	for _, group := range [][]models.Record{s.entries, records} {
		for _, r := range group {
			if _, ok := seen[r.UUID]; ok {
				continue
			}
			seen[r.UUID] = struct{}{}
			merged = append(merged, r)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].ID > merged[j].ID
	})

	if len(merged) > s.limit {
		merged = merged[:s.limit]
	}
	s.entries = merged
}

// Entries returns a copy of the list, newest first.
func (s *Stream) Entries() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Record, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
