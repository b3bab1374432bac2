package records

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/models"
)

const (
	thumbnailDocument = "https://placehold.co/400x500/e5deff/7E69AB?text=PDF"
	thumbnailImage    = "https://placehold.co/400x400/d3e4fd/0EA5E9?text=IMG"
)

// categoryByExt is the upload allow-list. Anything else is rejected at
// intake.
var categoryByExt = map[string]models.Category{
	".pdf":  models.CategoryDocument,
	".doc":  models.CategoryDocument,
	".docx": models.CategoryDocument,
	".jpg":  models.CategoryImage,
	".jpeg": models.CategoryImage,
	".png":  models.CategoryImage,
}

// CategoryForName infers the record category from the filename extension.
// Unsupported extensions yield common.ErrUnsupportedFileType.
func CategoryForName(name string) (models.Category, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if cat, ok := categoryByExt[ext]; ok {
		return cat, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFileType, ext)
}

// SizeLabel renders a byte count as the human-readable size fixed into the
// record at creation. It is never recomputed.
func SizeLabel(byteSize int64) string {
	const mb = 1 << 20
	const kb = 1 << 10
	switch {
	case byteSize >= mb:
		return fmt.Sprintf("%.1f MB", float64(byteSize)/mb)
	case byteSize >= kb:
		return fmt.Sprintf("%.1f KB", float64(byteSize)/kb)
	default:
		return fmt.Sprintf("%d B", byteSize)
	}
}

// ThumbnailFor picks the placeholder image for a category.
func ThumbnailFor(cat models.Category) string {
	if cat == models.CategoryImage {
		return thumbnailImage
	}
	return thumbnailDocument
}

// NewRecord builds a FileRecord for an upload. The id combines the creation
// timestamp with the caller-supplied index so records created in the same
// millisecond stay distinct. Returns common.ErrUnsupportedFileType for names
// outside the allow-list.
func NewRecord(name string, byteSize int64, ownerID, ownerDisplayName string, index int, now time.Time) (models.FileRecord, error) {
	cat, err := CategoryForName(name)
	if err != nil {
		return models.FileRecord{}, err
	}

	return models.FileRecord{
		ID:                fmt.Sprintf("%d-%d", now.UnixMilli(), index),
		Name:              name,
		Category:          cat,
		CreatedAt:         now.Format("2006-01-02"),
		UploadedAt:        now,
		SizeLabel:         SizeLabel(byteSize),
		OwnerID:           ownerID,
		OwnerDisplayName:  ownerDisplayName,
		SharedWithNames:   []string{},
		SharedWithIDs:     []string{},
		IsShared:          false,
		ThumbnailURL:      ThumbnailFor(cat),
		IntegrityStamp:    Stamp(name, byteSize, ownerID, now),
		IntegrityVerified: true,
	}, nil
}
