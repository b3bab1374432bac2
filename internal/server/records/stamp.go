// Package records holds the domain logic for medical file records: stamp
// generation and verification, the sharing workflow, and the role-filtered
// view. Everything here is pure; persistence lives in
// repositories/records.
package records

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dmitrijs2005/healophile/internal/server/models"
)

// Stamp derives the integrity stamp written into a record at upload time.
// It is deterministic for identical inputs, and the timestamp makes it
// effectively unique per upload.
//
// The stamp is a label. Nothing ever recomputes it from file content or
// checks it against a ledger, so it must not be treated as an integrity or
// security control.
func Stamp(name string, byteSize int64, ownerID string, now time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s|%d", name, byteSize, ownerID, now.UnixNano())))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether the record carries a stamp. A presence check, not
// a recomputation.
func Verify(r models.FileRecord) bool {
	return r.IntegrityStamp != ""
}

// VerifyAll returns copies of records with IntegrityVerified set from
// Verify. The caller is responsible for persisting the result.
func VerifyAll(recs []models.FileRecord) []models.FileRecord {
	out := make([]models.FileRecord, len(recs))
	for i, r := range recs {
		c := r.Clone()
		c.IntegrityVerified = Verify(r)
		out[i] = c
	}
	return out
}
