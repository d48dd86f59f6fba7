package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sequencer allocates document numbers from the document_counters table.
// The upsert-and-return runs as a single statement, so concurrent callers
// get distinct, strictly increasing values per (prefix, year), and a value
// is never handed out twice even across restarts.
type Sequencer struct {
	pool *pgxpool.Pool
}

func NewSequencer(pool *pgxpool.Pool) *Sequencer {
	return &Sequencer{pool: pool}
}

func (s *Sequencer) Next(ctx context.Context, prefix string, year int) (int64, error) {
	q := `
		INSERT INTO document_counters (prefix, year, counter)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year) DO UPDATE SET counter = document_counters.counter + 1
		RETURNING counter`
	var counter int64
	if err := s.pool.QueryRow(ctx, q, prefix, year).Scan(&counter); err != nil {
		return 0, fmt.Errorf("next document number: %w", err)
	}
	return counter, nil
}
