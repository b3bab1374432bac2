package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/models"
	"github.com/dmitrijs2005/healophile/internal/server/records"
	recordstore "github.com/dmitrijs2005/healophile/internal/server/repositories/records"
	"github.com/dmitrijs2005/healophile/internal/server/repositories/repomanager"
)

// RecordService implements the medical file workflows on top of the record
// store: upload intake, sharing, integrity verification and role-filtered
// listing. All mutations go through a load-modify-save cycle on the single
// record document.
type RecordService struct {
	store       *recordstore.Store
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	presigner   Presigner
	now         func() time.Time
}

// NewRecordService constructs a RecordService.
func NewRecordService(store *recordstore.Store, db *sql.DB, m repomanager.RepositoryManager, presigner Presigner) *RecordService {
	return &RecordService{
		store:       store,
		db:          db,
		repomanager: m,
		presigner:   presigner,
		now:         time.Now,
	}
}

// UploadResult is the outcome of an upload intake: the stored record plus a
// presigned PUT URL the client uses to deliver the blob.
type UploadResult struct {
	Record    models.FileRecord
	UploadURL string
}

// Upload registers a new file for the owner and hands back a presigned PUT
// URL. Unsupported extensions yield common.ErrUnsupportedFileType.
func (s *RecordService) Upload(ctx context.Context, ownerID, name string, byteSize int64) (*UploadResult, error) {
	owner, err := s.repomanager.Users(s.db).GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading owner: %v", err)
	}

	recs, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := records.NewRecord(name, byteSize, owner.ID, owner.DisplayName, len(recs), s.now())
	if err != nil {
		return nil, err
	}

	key, url, err := s.presigner.PresignedPutURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %v", err)
	}
	rec.StorageKey = key

	recs = append(recs, rec)
	if err := s.store.Save(ctx, recs); err != nil {
		return nil, err
	}

	return &UploadResult{Record: rec, UploadURL: url}, nil
}

// Share shares a file with a roster practitioner. Repeats and misses are
// reported through the outcome, not errors; the document is only rewritten
// when something actually changed.
func (s *RecordService) Share(ctx context.Context, fileID, recipientID string) (records.ShareOutcome, error) {
	recs, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	updated, outcome := records.ShareWith(recs, fileID, recipientID, records.Roster())
	if outcome == records.Shared {
		if err := s.store.Save(ctx, updated); err != nil {
			return 0, err
		}
	}
	return outcome, nil
}

// VerifyAll runs the integrity presence check over every record, persists the
// refreshed flags and returns the updated records.
func (s *RecordService) VerifyAll(ctx context.Context) ([]models.FileRecord, error) {
	recs, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	verified := records.VerifyAll(recs)
	if err := s.store.Save(ctx, verified); err != nil {
		return nil, err
	}
	return verified, nil
}

// List returns the records visible to the actor, narrowed by the optional
// query and facet. Upload order is preserved.
func (s *RecordService) List(ctx context.Context, actorID string, role common.Role, query, facet string) ([]models.FileRecord, error) {
	recs, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	visible := records.VisibleTo(recs, actorID, role)
	return records.ApplyFilter(visible, query, facet), nil
}

// Roster returns the practitioners files can be shared with.
func (s *RecordService) Roster() []models.Recipient {
	return records.Roster()
}

// DownloadURL returns a presigned GET URL for a file the actor can see.
// Seeded demo records carry no blob and report not found.
func (s *RecordService) DownloadURL(ctx context.Context, actorID string, role common.Role, fileID string) (string, error) {
	recs, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range records.VisibleTo(recs, actorID, role) {
		if r.ID != fileID {
			continue
		}
		if r.StorageKey == "" {
			return "", common.ErrorNotFound
		}
		url, err := s.presigner.PresignedGetURL(ctx, r.StorageKey)
		if err != nil {
			return "", fmt.Errorf("error presigning download: %v", err)
		}
		return url, nil
	}
	return "", common.ErrorNotFound
}
