package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"parkledger/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyDocument(t *testing.T) {
	repo := NewLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))

	ledger := repo.Load()
	require.NotNil(t, ledger)
	assert.Empty(t, ledger.ActiveTickets)
	assert.Empty(t, ledger.Members)
	assert.Empty(t, ledger.Transactions)
}

func TestLoadCorruptFileReturnsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	ledger := NewLedgerRepository(path).Load()
	require.NotNil(t, ledger)
	assert.Empty(t, ledger.ActiveTickets)
}

func TestLoadFillsMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"members": null}`), 0o644))

	ledger := NewLedgerRepository(path).Load()
	assert.NotNil(t, ledger.ActiveTickets)
	assert.NotNil(t, ledger.Members)
	assert.NotNil(t, ledger.Transactions)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := NewLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))

	ledger := db.NewLedger()
	ledger.ActiveTickets = append(ledger.ActiveTickets, db.Ticket{
		Receipt: "P-CR10.05-B1234XY", Plate: "B1234XY", Kind: db.KindCar,
		EntryDate: "2024-05-10", EntryHour: 10, EntryMinute: 5, HourlyRate: 5000,
	})
	ledger.Members = append(ledger.Members, db.Member{Phone: "081234567890", Name: "Dewi", VisitCount: 3})

	require.NoError(t, repo.Save(ledger))

	loaded := repo.Load()
	require.Len(t, loaded.ActiveTickets, 1)
	assert.Equal(t, "P-CR10.05-B1234XY", loaded.ActiveTickets[0].Receipt)
	require.Len(t, loaded.Members, 1)
	assert.Equal(t, 3, loaded.Members[0].VisitCount)
}

func TestUpdatePersistsOnSuccess(t *testing.T) {
	repo := NewLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))

	err := repo.Update(func(l *db.Ledger) error {
		l.Members = append(l.Members, db.Member{Phone: "081234567890", Name: "Dewi"})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, repo.Load().Members, 1)
}

func TestUpdateDoesNotPersistWhenFnFails(t *testing.T) {
	repo := NewLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, repo.Save(db.NewLedger()))

	wantErr := fmt.Errorf("validation failed")
	err := repo.Update(func(l *db.Ledger) error {
		l.Members = append(l.Members, db.Member{Phone: "081234567890", Name: "Dewi"})
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, repo.Load().Members, "rejected mutation must not reach disk")
}
