package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"parkledger/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupLedgerCopiesFile(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Update(func(l *db.Ledger) error {
		l.Members = append(l.Members, db.Member{Phone: "081234567890", Name: "Dewi"})
		return nil
	}))

	backupDir := filepath.Join(t.TempDir(), "backups")
	svc := NewJobService(repo, NewHistoryService(repo), backupDir, "", "")

	require.NoError(t, svc.BackupLedger())

	name := "ledger-" + time.Now().UTC().Format("2006-01-02") + ".json"
	backup, err := os.ReadFile(filepath.Join(backupDir, name))
	require.NoError(t, err)

	original, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, original, backup)
}

func TestBackupLedgerNoFileIsNotAnError(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewJobService(repo, NewHistoryService(repo), t.TempDir(), "", "")

	assert.NoError(t, svc.BackupLedger())
}

func TestSendDailyReportSkipsWithoutRecipient(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewJobService(repo, NewHistoryService(repo), t.TempDir(), "", "")

	assert.NoError(t, svc.SendDailyReport())
}
