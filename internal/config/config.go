package config

import (
	"os"
	"strconv"
)

// Rates holds the pricing configuration injected into the ticket service.
type Rates struct {
	CarHourly        int
	MotorcycleHourly int
	MemberDaily      int
}

type Config struct {
	Port           string
	LedgerFile     string
	BackupDir      string
	BackupSchedule string
	ReportSchedule string
	ReportEmail    string
	ReportName     string
	Rates          Rates
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		LedgerFile:     getEnv("LEDGER_FILE", "parking_ledger.json"),
		BackupDir:      getEnv("BACKUP_DIR", "backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
		ReportSchedule: getEnv("REPORT_SCHEDULE", "0 22 * * *"),
		ReportEmail:    os.Getenv("REPORT_EMAIL"),
		ReportName:     getEnv("REPORT_NAME", "Lot Operator"),
		Rates: Rates{
			CarHourly:        getEnvInt("CAR_HOURLY_RATE", 5000),
			MotorcycleHourly: getEnvInt("MOTORCYCLE_HOURLY_RATE", 3000),
			MemberDaily:      getEnvInt("MEMBER_DAILY_RATE", 5000),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
