package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/paragon-dev/paragon/internal/model"
)

// Ledger is a CSV file holding every transaction imported so far. Rows are
// keyed by fingerprint, so importing the same statement twice adds nothing.
type Ledger struct {
	mu   sync.Mutex
	path string
}

var _ model.Store = (*Ledger)(nil)

// NewLedger returns a ledger stored at path. The file is created on first save.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Load returns all rows in the ledger.
func (l *Ledger) Load() ([]Row, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *Ledger) load() ([]Row, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()
	return ReadTransactions(f)
}

// SaveBatch appends the transactions the ledger has not seen yet and returns
// how many were added. It is safe for concurrent use.
func (l *Ledger) SaveBatch(ctx context.Context, bank model.BankFormat, txns []model.ParsedTransaction) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.load()
	if err != nil {
		return 0, err
	}
	seen := make(map[uuid.UUID]bool, len(existing))
	for _, row := range existing {
		seen[row.ID] = true
	}

	var fresh []Row
	for _, row := range Rows(bank, txns) {
		if !seen[row.ID] {
			seen[row.ID] = true
			fresh = append(fresh, row)
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	if err := l.append(fresh, existing == nil); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (l *Ledger) append(rows []Row, needsHeader bool) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if needsHeader {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat ledger: %w", err)
		}
		needsHeader = info.Size() == 0
	}

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing ledger: %w", err)
	}
	return f.Close()
}
