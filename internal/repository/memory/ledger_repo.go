package memory

import (
	"context"
	"sync"

	"fairtix/internal/domain"
)

type ledgerRepository struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

// NewLedgerRepository returns an append-only in-memory ledger.
func NewLedgerRepository() domain.LedgerRepository {
	return &ledgerRepository{}
}

// Append stores a copy of entry and writes the assigned Seq back to it.
func (r *ledgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.Seq = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
}

// List returns one page of entries in append order and the total entry count.
// A zero PageSize returns every entry.
func (r *ledgerRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.LedgerEntry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := len(r.entries)
	start, end := 0, total
	if params.PageSize > 0 {
		start = params.Offset()
		if start > total {
			start = total
		}
		end = start + params.PageSize
		if end > total {
			end = total
		}
	}
	out := make([]*domain.LedgerEntry, 0, end-start)
	for i := start; i < end; i++ {
		cp := r.entries[i]
		out = append(out, &cp)
	}
	return out, total, nil
}

func (r *ledgerRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
