package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"parkledger/internal/repository"
)

// JobService runs the cron-scheduled maintenance work: nightly ledger file
// backups and the daily revenue report email.
type JobService struct {
	Repo        *repository.LedgerRepository
	History     *HistoryService
	BackupDir   string
	ReportEmail string
	ReportName  string
}

func NewJobService(repo *repository.LedgerRepository, history *HistoryService, backupDir, reportEmail, reportName string) *JobService {
	return &JobService{
		Repo:        repo,
		History:     history,
		BackupDir:   backupDir,
		ReportEmail: reportEmail,
		ReportName:  reportName,
	}
}

// BackupLedger copies the ledger file into the backup directory under a
// date-stamped name. A missing ledger file means nothing has been recorded
// yet and is not an error.
func (s *JobService) BackupLedger() error {
	log.Println("Cron Job: Backing up ledger file...")

	raw, err := os.ReadFile(s.Repo.Path())
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("Cron Job: No ledger file yet, nothing to back up.")
			return nil
		}
		return fmt.Errorf("cron job: failed to read ledger file: %w", err)
	}

	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return fmt.Errorf("cron job: failed to create backup dir: %w", err)
	}

	name := fmt.Sprintf("ledger-%s.json", time.Now().UTC().Format("2006-01-02"))
	dest := filepath.Join(s.BackupDir, name)
	if err := os.WriteFile(dest, raw, 0o644); err != nil {
		return fmt.Errorf("cron job: failed to write backup %s: %w", dest, err)
	}

	log.Printf("Cron Job: Ledger backed up to %s (%d bytes).", dest, len(raw))
	return nil
}

// SendDailyReport emails a summary of the day's checkouts to the configured
// operator address. Skipped with a warning when no recipient is configured.
func (s *JobService) SendDailyReport() error {
	if s.ReportEmail == "" {
		log.Println("WARNING: REPORT_EMAIL is not set. Daily report will not be sent.")
		return nil
	}

	log.Println("Cron Job: Building daily revenue report...")

	today := time.Now().UTC().Format("2006-01-02")
	var count, revenue int
	for _, tx := range s.Repo.Load().Transactions {
		if tx.CreatedAt.UTC().Format("2006-01-02") == today {
			count++
			revenue += tx.Fee
		}
	}

	stats := s.History.Dashboard()

	subject := fmt.Sprintf("Parking report %s: %d checkouts, %s collected", today, count, FormatAmount(revenue))
	body := fmt.Sprintf(
		"Daily parking report for %s\n\n"+
			"Checkouts today: %d\n"+
			"Revenue today: %s\n\n"+
			"Currently parked: %d (%d cars, %d motorcycles)\n"+
			"Registered members: %d\n"+
			"Lifetime transactions: %d\n"+
			"Lifetime revenue: %s\n",
		today, count, FormatAmount(revenue),
		stats.ActiveTotal, stats.ActiveCars, stats.ActiveMotorcycles,
		stats.Members, stats.Transactions, FormatAmount(stats.TotalRevenue),
	)

	if err := SendEmailWithSendGrid(s.ReportEmail, s.ReportName, subject, body, ""); err != nil {
		return fmt.Errorf("cron job: failed to send daily report: %w", err)
	}

	log.Printf("Cron Job: Daily report sent to %s.", s.ReportEmail)
	return nil
}
