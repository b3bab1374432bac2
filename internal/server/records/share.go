package records

import "github.com/dmitrijs2005/healophile/internal/server/models"

// ShareOutcome is the typed result of a share attempt, so callers can tell
// a successful share from an idempotent repeat and from the two lookup
// misses instead of guessing from an unchanged list.
type ShareOutcome int

const (
	Shared ShareOutcome = iota
	AlreadyShared
	FileNotFound
	RecipientNotFound
)

func (o ShareOutcome) String() string {
	switch o {
	case Shared:
		return "shared"
	case AlreadyShared:
		return "already shared"
	case FileNotFound:
		return "file not found"
	case RecipientNotFound:
		return "recipient not found"
	default:
		return "unknown"
	}
}

// ShareWith grants recipientID access to the record with fileID.
//
// On any miss (unknown recipient, unknown file) or an idempotent repeat the
// input slice is returned as-is. On success a new slice is returned in which
// only the matched record is replaced; all other elements are the original
// values. Shares are append-only: the recipient id and the roster display
// name are appended to the two parallel lists, keeping them index-aligned,
// and IsShared is refreshed from the ids list.
func ShareWith(recs []models.FileRecord, fileID, recipientID string, roster []models.Recipient) ([]models.FileRecord, ShareOutcome) {
	var recipient *models.Recipient
	for i := range roster {
		if roster[i].ID == recipientID {
			recipient = &roster[i]
			break
		}
	}
	if recipient == nil {
		return recs, RecipientNotFound
	}

	idx := -1
	for i := range recs {
		if recs[i].ID == fileID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return recs, FileNotFound
	}

	if recs[idx].SharedWith(recipientID) {
		return recs, AlreadyShared
	}

	updated := recs[idx].Clone()
	updated.SharedWithIDs = append(updated.SharedWithIDs, recipientID)
	updated.SharedWithNames = append(updated.SharedWithNames, recipient.DisplayName)
	updated.IsShared = len(updated.SharedWithIDs) > 0

	out := make([]models.FileRecord, len(recs))
	copy(out, recs)
	out[idx] = updated
	return out, Shared
}
