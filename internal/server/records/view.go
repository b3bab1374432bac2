package records

import (
	"strings"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/models"
)

// Filter facets accepted by ApplyFilter. FacetShared is only offered to
// patients; the HTTP layer rejects it for doctors.
const (
	FacetAll      = "all"
	FacetDocument = "document"
	FacetImage    = "image"
	FacetShared   = "shared"
)

// VisibleTo narrows records to what one actor may see: patients see the
// records they own regardless of sharing, doctors see exactly the records
// shared with them. Insertion order is preserved.
func VisibleTo(recs []models.FileRecord, actorID string, role common.Role) []models.FileRecord {
	out := make([]models.FileRecord, 0, len(recs))
	for _, r := range recs {
		switch role {
		case common.RoleDoctor:
			if r.SharedWith(actorID) {
				out = append(out, r)
			}
		default:
			if r.OwnerID == actorID {
				out = append(out, r)
			}
		}
	}
	return out
}

// ApplyFilter applies the free-text search and the category facet, ANDed.
// The query matches case-insensitively against the record name. Unknown
// facets behave like FacetAll. Ordering is preserved.
func ApplyFilter(recs []models.FileRecord, query, facet string) []models.FileRecord {
	q := strings.ToLower(query)

	out := make([]models.FileRecord, 0, len(recs))
	for _, r := range recs {
		if q != "" && !strings.Contains(strings.ToLower(r.Name), q) {
			continue
		}
		switch facet {
		case FacetDocument:
			if r.Category != models.CategoryDocument {
				continue
			}
		case FacetImage:
			if r.Category != models.CategoryImage {
				continue
			}
		case FacetShared:
			if !r.IsShared {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
