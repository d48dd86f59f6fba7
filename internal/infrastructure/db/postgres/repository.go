package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// row is the subset of pgx.Row the scan helpers need.
type row interface {
	Scan(dest ...any) error
}

// patchBuilder accumulates SET clauses and positional arguments for
// partial updates. updated_at is always touched.
type patchBuilder struct {
	set  []string
	args []any
}

func newPatch() *patchBuilder {
	return &patchBuilder{set: []string{"updated_at = now()"}}
}

func (p *patchBuilder) add(col string, v any) {
	p.args = append(p.args, v)
	p.set = append(p.set, fmt.Sprintf("%s = $%d", col, len(p.args)))
}

// bind appends a WHERE argument and returns its placeholder.
func (p *patchBuilder) bind(v any) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", len(p.args))
}

func (p *patchBuilder) clause() string {
	return strings.Join(p.set, ", ")
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
