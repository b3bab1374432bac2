package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/models"
)

// Store is the File Record Store: the single source of truth for the record
// list. It owns one Slot and nothing else holds a competing copy.
//
// Save is a full-document overwrite with no concurrency check; with more
// than one writer the last save wins and earlier appends are lost. That
// matches the portal's single-actor usage and is a documented limitation,
// not a guarantee.
type Store struct {
	slot Slot
	seed func() []models.FileRecord
}

// NewStore builds a store over slot. seed supplies the first-run dataset; it
// is invoked at most once per empty slot.
func NewStore(slot Slot, seed func() []models.FileRecord) *Store {
	return &Store{slot: slot, seed: seed}
}

// Load returns all persisted records. An empty slot is seeded immediately so
// subsequent starts observe the same baseline. A blob that exists but fails
// to decode is a corruption fault: Load returns common.ErrCorruptedStore and
// never resets the data underneath the caller.
func (s *Store) Load(ctx context.Context) ([]models.FileRecord, error) {
	data, err := s.slot.Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			recs := s.seed()
			if err := s.Save(ctx, recs); err != nil {
				return nil, fmt.Errorf("seeding records: %w", err)
			}
			return recs, nil
		}
		return nil, err
	}

	var recs []models.FileRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrCorruptedStore, err)
	}
	return recs, nil
}

// Save overwrites the persisted blob with records. Persistence failures
// propagate to the caller so the UI can report "could not save".
func (s *Store) Save(ctx context.Context, recs []models.FileRecord) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if err := s.slot.Put(ctx, data); err != nil {
		return fmt.Errorf("persisting records: %w", err)
	}
	return nil
}
