// Package models defines server-side data models. FileRecord is also the
// persisted wire shape of the records blob, so its JSON tags are part of the
// storage contract and must stay stable.
package models

import "time"

// Category classifies a medical file by how the portal renders it.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
)

// FileRecord is a single uploaded file's metadata and sharing state.
//
// ID, OwnerID, Category, ThumbnailURL and IntegrityStamp are fixed at
// creation. SharedWithNames and SharedWithIDs are parallel, index-aligned
// lists that only grow; IsShared is the cached "len(SharedWithIDs) > 0".
type FileRecord struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	CreatedAt        string    `json:"createdAt"` // day granularity, "2006-01-02"
	UploadedAt       time.Time `json:"uploadedAt"`
	SizeLabel        string    `json:"sizeLabel"`
	OwnerID          string    `json:"ownerId"`
	OwnerDisplayName string    `json:"ownerDisplayName"`
	SharedWithNames  []string  `json:"sharedWithNames"`
	SharedWithIDs    []string  `json:"sharedWithIds"`
	IsShared         bool      `json:"isShared"`
	ThumbnailURL     string    `json:"thumbnailUrl"`
	// StorageKey locates the uploaded blob in object storage. Seeded demo
	// records have none.
	StorageKey     string `json:"storageKey,omitempty"`
	IntegrityStamp string `json:"integrityStamp"`
	// IntegrityVerified records the outcome of the last presence check of
	// IntegrityStamp. It is a display flag, not a security property.
	IntegrityVerified bool `json:"integrityVerified"`
}

// SharedWith reports whether the record is already shared with recipientID.
func (r FileRecord) SharedWith(recipientID string) bool {
	for _, id := range r.SharedWithIDs {
		if id == recipientID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate sharing lists without
// aliasing the original slices.
func (r FileRecord) Clone() FileRecord {
	c := r
	c.SharedWithNames = append([]string(nil), r.SharedWithNames...)
	c.SharedWithIDs = append([]string(nil), r.SharedWithIDs...)
	return c
}

// Recipient is a static roster entry: a practitioner files can be shared
// with. Read-only reference data, never persisted.
type Recipient struct {
	ID             string `json:"id"`
	DisplayName    string `json:"displayName"`
	SpecialtyLabel string `json:"specialtyLabel"`
}
