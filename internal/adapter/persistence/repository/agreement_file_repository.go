package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"kasra-bnpl/internal/domain/entities"
	"kasra-bnpl/internal/usecase/interfaces"
)

// ErrCorruptStore marks an agreements file that exists but does not parse.
// Callers can distinguish it from plain I/O failures with errors.Is.
var ErrCorruptStore = errors.New("agreements store is corrupt")

// AgreementFileRepository persists the whole buyer->agreements mapping as a
// single human-readable JSON document.
//
// Every operation loads or rewrites the full document, which bounds the
// store to what fits comfortably in memory. Writes go through a temp file
// plus fsync plus rename so a crash mid-write never leaves a torn document.

type AgreementFileRepository struct {
	path string
	mu   sync.RWMutex
}

var _ interfaces.IAgreementRepository = (*AgreementFileRepository)(nil)

func NewAgreementFileRepository(path string) *AgreementFileRepository {
	return &AgreementFileRepository{path: path}
}

func (r *AgreementFileRepository) ListByBuyer(ctx context.Context, buyerAccountID string) ([]entities.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return append([]entities.Agreement(nil), doc[buyerAccountID]...), nil
}

func (r *AgreementFileRepository) PutBuyer(ctx context.Context, buyerAccountID string, agreements []entities.Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	doc[buyerAccountID] = agreements
	return r.store(doc)
}

func (r *AgreementFileRepository) ReadAll(ctx context.Context) (map[string][]entities.Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

func (r *AgreementFileRepository) load() (map[string][]entities.Agreement, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]entities.Agreement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read agreements file: %w", err)
	}

	doc := map[string][]entities.Agreement{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return doc, nil
}

func (r *AgreementFileRepository) store(doc map[string][]entities.Agreement) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode agreements document: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".agreements-*.json")
	if err != nil {
		return fmt.Errorf("create temp agreements file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write agreements file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync agreements file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close agreements file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace agreements file: %w", err)
	}
	return nil
}
