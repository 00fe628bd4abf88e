package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlamlearn/adlam-api/internal/store"
)

// Value kind tags stored alongside each preference row.
const (
	kindInt       = "int"
	kindInt64     = "int64"
	kindFloat64   = "float64"
	kindString    = "string"
	kindStringSet = "string_set"
)

// pendingOp is one buffered write: a set, a delete, or a prefix delete.
type pendingOp struct {
	key    string
	prefix string // non-empty for prefix deletes
	delete bool
	kind   string
	i64    int64
	f64    float64
	s      string
	set    []string
}

// PrefStore implements store.PrefStore on top of a PostgreSQL preferences
// table. Sets and deletes buffer in memory until Commit flushes them in one
// transaction; reads consult the buffer first so an engine always sees its
// own writes.
type PrefStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	mu      sync.Mutex
	pending []pendingOp
}

// NewPrefStore creates a preference store over an existing connection pool.
// The pool should be initialized and closed by the caller.
func NewPrefStore(pool *pgxpool.Pool, logger *slog.Logger) *PrefStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil for PrefStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PrefStore{
		pool:   pool,
		logger: logger.With(slog.String("component", "pref_store")),
	}
}

// Ensure PrefStore implements store.PrefStore.
var _ store.PrefStore = (*PrefStore)(nil)

// pendingLookup scans the write buffer newest-first for an op affecting key.
// Returns the op and true when one shadows the database row.
func (p *PrefStore) pendingLookup(key string) (pendingOp, bool) {
	for i := len(p.pending) - 1; i >= 0; i-- {
		op := p.pending[i]
		if op.prefix != "" {
			if strings.HasPrefix(key, op.prefix) {
				return pendingOp{key: key, delete: true}, true
			}
			continue
		}
		if op.key == key {
			return op, true
		}
	}
	return pendingOp{}, false
}

func (p *PrefStore) getRow(ctx context.Context, key string) (kind string, i64 int64, f64 float64, s string, set []string, found bool, err error) {
	row := p.pool.QueryRow(ctx,
		`SELECT value_kind, COALESCE(int_value, 0), COALESCE(float_value, 0),
		        COALESCE(text_value, ''), COALESCE(set_value, '{}')
		   FROM preferences WHERE key = $1`, key)
	err = row.Scan(&kind, &i64, &f64, &s, &set)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, 0, "", nil, false, nil
	}
	if err != nil {
		return "", 0, 0, "", nil, false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return kind, i64, f64, s, set, true, nil
}

// GetInt implements store.PrefStore.GetInt.
func (p *PrefStore) GetInt(ctx context.Context, key string, def int) (int, error) {
	if key == "" {
		return def, store.ErrKeyEmpty
	}

	p.mu.Lock()
	if op, ok := p.pendingLookup(key); ok {
		p.mu.Unlock()
		if op.delete {
			return def, nil
		}
		if op.kind != kindInt {
			return def, store.ErrWrongType
		}
		return int(op.i64), nil
	}
	p.mu.Unlock()

	kind, i64, _, _, _, found, err := p.getRow(ctx, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	if kind != kindInt {
		return def, store.ErrWrongType
	}
	return int(i64), nil
}

// SetInt implements store.PrefStore.SetInt.
func (p *PrefStore) SetInt(_ context.Context, key string, value int) error {
	if key == "" {
		return store.ErrKeyEmpty
	}
	p.buffer(pendingOp{key: key, kind: kindInt, i64: int64(value)})
	return nil
}

// GetInt64 implements store.PrefStore.GetInt64.
func (p *PrefStore) GetInt64(ctx context.Context, key string, def int64) (int64, error) {
	if key == "" {
		return def, store.ErrKeyEmpty
	}

	p.mu.Lock()
	if op, ok := p.pendingLookup(key); ok {
		p.mu.Unlock()
		if op.delete {
			return def, nil
		}
		if op.kind != kindInt64 {
			return def, store.ErrWrongType
		}
		return op.i64, nil
	}
	p.mu.Unlock()

	kind, i64, _, _, _, found, err := p.getRow(ctx, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	if kind != kindInt64 {
		return def, store.ErrWrongType
	}
	return i64, nil
}

// SetInt64 implements store.PrefStore.SetInt64.
func (p *PrefStore) SetInt64(_ context.Context, key string, value int64) error {
	if key == "" {
		return store.ErrKeyEmpty
	}
	p.buffer(pendingOp{key: key, kind: kindInt64, i64: value})
	return nil
}

// GetFloat64 implements store.PrefStore.GetFloat64.
func (p *PrefStore) GetFloat64(ctx context.Context, key string, def float64) (float64, error) {
	if key == "" {
		return def, store.ErrKeyEmpty
	}

	p.mu.Lock()
	if op, ok := p.pendingLookup(key); ok {
		p.mu.Unlock()
		if op.delete {
			return def, nil
		}
		if op.kind != kindFloat64 {
			return def, store.ErrWrongType
		}
		return op.f64, nil
	}
	p.mu.Unlock()

	kind, _, f64, _, _, found, err := p.getRow(ctx, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	if kind != kindFloat64 {
		return def, store.ErrWrongType
	}
	return f64, nil
}

// SetFloat64 implements store.PrefStore.SetFloat64.
func (p *PrefStore) SetFloat64(_ context.Context, key string, value float64) error {
	if key == "" {
		return store.ErrKeyEmpty
	}
	p.buffer(pendingOp{key: key, kind: kindFloat64, f64: value})
	return nil
}

// GetString implements store.PrefStore.GetString.
func (p *PrefStore) GetString(ctx context.Context, key string, def string) (string, error) {
	if key == "" {
		return def, store.ErrKeyEmpty
	}

	p.mu.Lock()
	if op, ok := p.pendingLookup(key); ok {
		p.mu.Unlock()
		if op.delete {
			return def, nil
		}
		if op.kind != kindString {
			return def, store.ErrWrongType
		}
		return op.s, nil
	}
	p.mu.Unlock()

	kind, _, _, s, _, found, err := p.getRow(ctx, key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	if kind != kindString {
		return def, store.ErrWrongType
	}
	return s, nil
}

// SetString implements store.PrefStore.SetString.
func (p *PrefStore) SetString(_ context.Context, key string, value string) error {
	if key == "" {
		return store.ErrKeyEmpty
	}
	p.buffer(pendingOp{key: key, kind: kindString, s: value})
	return nil
}

// GetStringSet implements store.PrefStore.GetStringSet.
func (p *PrefStore) GetStringSet(ctx context.Context, key string, def []string) ([]string, error) {
	if key == "" {
		return append([]string(nil), def...), store.ErrKeyEmpty
	}

	p.mu.Lock()
	if op, ok := p.pendingLookup(key); ok {
		p.mu.Unlock()
		if op.delete {
			return append([]string(nil), def...), nil
		}
		if op.kind != kindStringSet {
			return append([]string(nil), def...), store.ErrWrongType
		}
		return append([]string(nil), op.set...), nil
	}
	p.mu.Unlock()

	kind, _, _, _, set, found, err := p.getRow(ctx, key)
	if err != nil {
		return append([]string(nil), def...), err
	}
	if !found {
		return append([]string(nil), def...), nil
	}
	if kind != kindStringSet {
		return append([]string(nil), def...), store.ErrWrongType
	}
	sort.Strings(set)
	return set, nil
}

// SetStringSet implements store.PrefStore.SetStringSet.
func (p *PrefStore) SetStringSet(_ context.Context, key string, value []string) error {
	if key == "" {
		return store.ErrKeyEmpty
	}

	seen := make(map[string]bool, len(value))
	set := make([]string, 0, len(value))
	for _, s := range value {
		if !seen[s] {
			seen[s] = true
			set = append(set, s)
		}
	}
	sort.Strings(set)

	p.buffer(pendingOp{key: key, kind: kindStringSet, set: set})
	return nil
}

// Delete implements store.PrefStore.Delete.
func (p *PrefStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return store.ErrKeyEmpty
	}
	p.buffer(pendingOp{key: key, delete: true})
	return nil
}

// DeletePrefix implements store.PrefStore.DeletePrefix.
func (p *PrefStore) DeletePrefix(_ context.Context, prefix string) error {
	p.buffer(pendingOp{prefix: prefix, delete: true})
	return nil
}

func (p *PrefStore) buffer(op pendingOp) {
	p.mu.Lock()
	p.pending = append(p.pending, op)
	p.mu.Unlock()
}

// Commit implements store.PrefStore.Commit. Buffered operations flush to the
// preferences table in order, in one transaction.
func (p *PrefStore) Commit(ctx context.Context) error {
	p.mu.Lock()
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin preference commit: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			p.logger.Error("failed to roll back preference commit", "error", rbErr)
		}
	}()

	for _, op := range pending {
		if err := applyOp(ctx, tx, op); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}
	return nil
}

func applyOp(ctx context.Context, tx pgx.Tx, op pendingOp) error {
	switch {
	case op.prefix != "":
		if _, err := tx.Exec(ctx,
			`DELETE FROM preferences WHERE key LIKE $1 || '%'`, op.prefix); err != nil {
			return fmt.Errorf("failed to delete preference prefix %q: %w", op.prefix, err)
		}
	case op.delete:
		if _, err := tx.Exec(ctx,
			`DELETE FROM preferences WHERE key = $1`, op.key); err != nil {
			return fmt.Errorf("failed to delete preference %q: %w", op.key, err)
		}
	default:
		if _, err := tx.Exec(ctx,
			`INSERT INTO preferences (key, value_kind, int_value, float_value, text_value, set_value, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, now())
			 ON CONFLICT (key) DO UPDATE
			   SET value_kind = EXCLUDED.value_kind,
			       int_value = EXCLUDED.int_value,
			       float_value = EXCLUDED.float_value,
			       text_value = EXCLUDED.text_value,
			       set_value = EXCLUDED.set_value,
			       updated_at = now()`,
			op.key, op.kind, op.i64, op.f64, op.s, op.set); err != nil {
			return fmt.Errorf("failed to upsert preference %q: %w", op.key, err)
		}
	}
	return nil
}
