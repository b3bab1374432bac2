package records

import (
	"time"

	"github.com/dmitrijs2005/healophile/internal/server/models"
)

// Demo identities referenced by the seed dataset.
const (
	SeedPatientID   = "pat456"
	SeedPatientName = "Priya Sharma"
	SeedDoctorID    = "doc123"
)

// Roster returns the static list of practitioners available as sharing
// targets. Read-only reference data; not persisted and not user-manageable.
func Roster() []models.Recipient {
	return []models.Recipient{
		{ID: "doc123", DisplayName: "Dr. Arjun Singh", SpecialtyLabel: "Cardiology"},
		{ID: "d2", DisplayName: "Dr. Kavita Deshmukh", SpecialtyLabel: "Neurology"},
		{ID: "d3", DisplayName: "Dr. Rajesh Gupta", SpecialtyLabel: "Orthopedics"},
	}
}

// Seed returns the baseline dataset written into an empty store on first
// load, so every fresh deployment starts from the same demo state. A new
// deep copy is returned on every call.
func Seed() []models.FileRecord {
	return []models.FileRecord{
		{
			ID:                "1",
			Name:              "Blood Test Results.pdf",
			Category:          models.CategoryDocument,
			CreatedAt:         "2025-03-15",
			UploadedAt:        time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			SizeLabel:         "1.2 MB",
			OwnerID:           SeedPatientID,
			OwnerDisplayName:  SeedPatientName,
			SharedWithNames:   []string{"Dr. Arjun Singh"},
			SharedWithIDs:     []string{"doc123"},
			IsShared:          true,
			ThumbnailURL:      thumbnailDocument,
			IntegrityStamp:    "8f7d88e4c3a0aaf6e25a8c137426310bd01f72f54376c37cbce41452a98d5950",
			IntegrityVerified: true,
		},
		{
			ID:                "2",
			Name:              "X-Ray Left Arm.jpg",
			Category:          models.CategoryImage,
			CreatedAt:         "2025-02-28",
			UploadedAt:        time.Date(2025, 2, 28, 15, 45, 0, 0, time.UTC),
			SizeLabel:         "3.5 MB",
			OwnerID:           SeedPatientID,
			OwnerDisplayName:  SeedPatientName,
			SharedWithNames:   []string{"Dr. Arjun Singh"},
			SharedWithIDs:     []string{"doc123"},
			IsShared:          true,
			ThumbnailURL:      "https://placehold.co/400x400/d3e4fd/0EA5E9?text=X-Ray",
			IntegrityStamp:    "a1c2e3g4i5k6m7o8q9s0u1w2y3a4c5e6g7i8k9m0o1q2s3u4w5y6",
			IntegrityVerified: true,
		},
		{
			ID:                "3",
			Name:              "Doctor Prescription.pdf",
			Category:          models.CategoryDocument,
			CreatedAt:         "2025-03-10",
			UploadedAt:        time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC),
			SizeLabel:         "0.8 MB",
			OwnerID:           SeedPatientID,
			OwnerDisplayName:  SeedPatientName,
			SharedWithNames:   []string{},
			SharedWithIDs:     []string{},
			IsShared:          false,
			ThumbnailURL:      thumbnailDocument,
			IntegrityStamp:    "b2d3f4h5j6l7n8p9r0t1v2x3z4b5d6f7h8j9l0n1p2r3t4v5x6z7",
			IntegrityVerified: true,
		},
		{
			ID:                "4",
			Name:              "MRI Scan Results.jpg",
			Category:          models.CategoryImage,
			CreatedAt:         "2025-01-20",
			UploadedAt:        time.Date(2025, 1, 20, 11, 20, 0, 0, time.UTC),
			SizeLabel:         "5.2 MB",
			OwnerID:           SeedPatientID,
			OwnerDisplayName:  SeedPatientName,
			SharedWithNames:   []string{"Dr. Arjun Singh"},
			SharedWithIDs:     []string{"doc123"},
			IsShared:          true,
			ThumbnailURL:      "https://placehold.co/400x400/d3e4fd/0EA5E9?text=MRI",
			IntegrityStamp:    "c3e4g5i6k7m8o9q0s1u2w3y4a5c6e7g8i9k0m1o2q3s4u5w6y7",
			IntegrityVerified: true,
		},
		{
			ID:                "5",
			Name:              "Medical History.pdf",
			Category:          models.CategoryDocument,
			CreatedAt:         "2024-12-05",
			UploadedAt:        time.Date(2024, 12, 5, 14, 50, 0, 0, time.UTC),
			SizeLabel:         "2.1 MB",
			OwnerID:           SeedPatientID,
			OwnerDisplayName:  SeedPatientName,
			SharedWithNames:   []string{},
			SharedWithIDs:     []string{},
			IsShared:          false,
			ThumbnailURL:      thumbnailDocument,
			IntegrityStamp:    "d4f5h6j7l8n9p0r1t2v3x4z5b6d7f8h9j0l1n2p3r4t5v6x7z8",
			IntegrityVerified: true,
		},
	}
}
