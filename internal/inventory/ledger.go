package inventory

import (
	"github.com/mossholt/cardforge/internal/domain"
)

// Ledger owns the collection of card instances. It is a plain in-memory
// structure; the game service serializes access, so the ledger itself is not
// safe for concurrent use.
type Ledger struct {
	cards []domain.CardInstance
}

// NewLedger creates a ledger seeded with the given instances (typically a
// loaded save).
func NewLedger(cards []domain.CardInstance) *Ledger {
	l := &Ledger{}
	l.cards = append(l.cards, cards...)
	return l
}

// Add appends instances to the collection. No deduplication is performed;
// duplicates are an expected state that dedup cleans up on demand.
func (l *Ledger) Add(cards ...domain.CardInstance) {
	l.cards = append(l.cards, cards...)
}

// Cards returns a copy of the collection in insertion order.
func (l *Ledger) Cards() []domain.CardInstance {
	out := make([]domain.CardInstance, len(l.cards))
	copy(out, l.cards)
	return out
}

// Len returns the number of owned instances.
func (l *Ledger) Len() int {
	return len(l.cards)
}

// Get returns the instance with the given id.
func (l *Ledger) Get(instanceID string) (domain.CardInstance, bool) {
	for _, c := range l.cards {
		if c.InstanceID == instanceID {
			return c, true
		}
	}
	return domain.CardInstance{}, false
}

// RemoveResult reports what a removal actually did. Locked instances are
// silently excluded, so RemovedIDs can be shorter than the request.
type RemoveResult struct {
	RemovedIDs []string
	TotalValue int
}

// Remove deletes the matching unlocked instances and returns their ids and
// summed value. Selling a locked card is a policy no-op for that card, not
// an error. Callers must evict RemovedIDs from the battle deck.
func (l *Ledger) Remove(instanceIDs []string) RemoveResult {
	requested := make(map[string]struct{}, len(instanceIDs))
	for _, id := range instanceIDs {
		requested[id] = struct{}{}
	}

	var result RemoveResult
	kept := l.cards[:0]
	for _, c := range l.cards {
		_, wanted := requested[c.InstanceID]
		if wanted && !c.IsLocked {
			result.RemovedIDs = append(result.RemovedIDs, c.InstanceID)
			result.TotalValue += c.Value
			continue
		}
		kept = append(kept, c)
	}
	l.cards = kept
	return result
}

// ToggleLock flips the lock flag on the given instance and returns the new
// state. Unknown ids are a no-op.
func (l *Ledger) ToggleLock(instanceID string) (locked, ok bool) {
	for i := range l.cards {
		if l.cards[i].InstanceID == instanceID {
			l.cards[i].IsLocked = !l.cards[i].IsLocked
			return l.cards[i].IsLocked, true
		}
	}
	return false, false
}

// UnlockedIDs returns the ids of every instance not protected by a lock.
func (l *Ledger) UnlockedIDs() []string {
	var ids []string
	for _, c := range l.cards {
		if !c.IsLocked {
			ids = append(ids, c.InstanceID)
		}
	}
	return ids
}

// PatchArt updates the art reference on every instance of a definition.
// Keeps live instances in sync after an admin image edit.
func (l *Ledger) PatchArt(definitionID string, imageID int, imageURI string) int {
	patched := 0
	for i := range l.cards {
		if l.cards[i].DefinitionID == definitionID {
			l.cards[i].ImageID = imageID
			l.cards[i].ImageURI = imageURI
			patched++
		}
	}
	return patched
}

// Clear drops every instance.
func (l *Ledger) Clear() {
	l.cards = nil
}
