package repository

import (
	"context"

	"github.com/umalmyha/fraudwatch/internal/model"
)

// TransactionLogRepository is persistent storage of the append-only
// transaction log
type TransactionLogRepository interface {
	FindAll(context.Context) ([]model.TransactionLogEntry, error)
	Append(context.Context, model.TransactionLogEntry) error
}

type jsonTransactionLogRepository struct {
	path string
}

// NewJSONTransactionLogRepository builds log repository backed by a JSON document
func NewJSONTransactionLogRepository(path string) TransactionLogRepository {
	return &jsonTransactionLogRepository{path: path}
}

func (repo *jsonTransactionLogRepository) FindAll(_ context.Context) ([]model.TransactionLogEntry, error) {
	entries := make([]model.TransactionLogEntry, 0)
	if err := readSnapshot(repo.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append rewrites the full document with one more entry at the end. O(n) per
// append, acceptable at this log volume.
func (repo *jsonTransactionLogRepository) Append(ctx context.Context, entry model.TransactionLogEntry) error {
	entries, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return writeSnapshot(repo.path, entries)
}
