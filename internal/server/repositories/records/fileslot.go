package records

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/healophile/internal/common"
)

// FileSlot keeps the blob in a single file on disk. The default backend for
// single-node deployments and tests.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("reading slot file: %w", err)
	}
	return data, nil
}

func (s *FileSlot) Put(_ context.Context, data []byte) error {
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing slot file: %w", err)
	}
	return nil
}
