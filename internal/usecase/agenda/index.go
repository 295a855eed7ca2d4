package agenda

import (
	"sort"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// Index is the derived reverse mapping from a referenced entity to the
// notes that mention it. It is rebuilt from a fresh scan on every read
// and never persisted; each bucket is kept most-recent-first so that
// "top N" truncation needs no second sort downstream.
type Index struct {
	buckets map[entities.EntityRef][]ScannedNote
}

// BuildIndex groups scanned notes by their referenced entity and orders
// every bucket descending by note timestamp.
func BuildIndex(scanned []ScannedNote) *Index {
	ix := &Index{buckets: make(map[entities.EntityRef][]ScannedNote)}
	for _, sn := range scanned {
		ref := *sn.Note.ReferencedEntity
		ix.buckets[ref] = append(ix.buckets[ref], sn)
	}
	for _, bucket := range ix.buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Note.Timestamp.After(bucket[j].Note.Timestamp)
		})
	}
	return ix
}

// Lookup returns the bucket for one entity, most recent first. An entity
// that has never been referenced yields an empty slice, not an error.
func (ix *Index) Lookup(ref entities.EntityRef) []ScannedNote {
	if ix == nil {
		return nil
	}
	return ix.buckets[ref]
}

// Buckets exposes the full grouping for single-pass aggregation.
func (ix *Index) Buckets() map[entities.EntityRef][]ScannedNote {
	if ix == nil {
		return nil
	}
	return ix.buckets
}
