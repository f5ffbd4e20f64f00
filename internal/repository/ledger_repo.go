package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"parkledger/internal/db"
)

// LedgerRepository persists the whole ledger document as a single JSON file,
// rewritten wholesale on every mutation. It is also the serialization point:
// Update holds a mutex across the load-mutate-save cycle so two operations
// cannot overwrite each other's writes.
type LedgerRepository struct {
	path string
	mu   sync.Mutex
}

func NewLedgerRepository(path string) *LedgerRepository {
	return &LedgerRepository{path: path}
}

func (r *LedgerRepository) Path() string {
	return r.path
}

// Load reads the ledger document. A missing file, a decode error, or a
// permission error all yield an empty valid document so the application keeps
// serving; the cause is logged for operators.
func (r *LedgerRepository) Load() *db.Ledger {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARNING: could not read ledger file %s: %v", r.path, err)
		}
		return db.NewLedger()
	}

	var ledger db.Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		log.Printf("WARNING: could not decode ledger file %s: %v", r.path, err)
		return db.NewLedger()
	}

	// Keep collections non-nil so the persisted shape stays stable.
	if ledger.ActiveTickets == nil {
		ledger.ActiveTickets = []db.Ticket{}
	}
	if ledger.Members == nil {
		ledger.Members = []db.Member{}
	}
	if ledger.Transactions == nil {
		ledger.Transactions = []db.Transaction{}
	}
	return &ledger
}

// Save writes the whole document via a temp file and rename, so a failed
// write never leaves a truncated ledger behind.
func (r *LedgerRepository) Save(ledger *db.Ledger) error {
	raw, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing ledger file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing ledger file: %w", err)
	}
	return nil
}

// Update runs fn against a freshly loaded document and saves the result,
// holding the repository lock for the whole cycle. If fn returns an error
// nothing is saved, so validation failures never mutate persisted state.
func (r *LedgerRepository) Update(fn func(*db.Ledger) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger := r.Load()
	if err := fn(ledger); err != nil {
		return err
	}
	return r.Save(ledger)
}
