package main

import (
	"log"
	"net/http"
	"os"

	"parkledger/internal/api"
	"parkledger/internal/config"
	"parkledger/internal/repository"
	"parkledger/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	repo := repository.NewLedgerRepository(cfg.LedgerFile)

	ticketSvc := service.NewTicketService(repo, cfg.Rates)
	memberSvc := service.NewMemberService(repo)
	historySvc := service.NewHistoryService(repo)
	jobSvc := service.NewJobService(repo, historySvc, cfg.BackupDir, cfg.ReportEmail, cfg.ReportName)

	ticketHandler := api.NewTicketHandler(ticketSvc)
	memberHandler := api.NewMemberHandler(memberSvc)
	historyHandler := api.NewHistoryHandler(historySvc)

	c := cron.New()
	if _, err := c.AddFunc(cfg.BackupSchedule, func() {
		if err := jobSvc.BackupLedger(); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid backup schedule %q: %v", cfg.BackupSchedule, err)
	}
	if _, err := c.AddFunc(cfg.ReportSchedule, func() {
		if err := jobSvc.SendDailyReport(); err != nil {
			log.Printf("ERROR: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid report schedule %q: %v", cfg.ReportSchedule, err)
	}
	c.Start()
	defer c.Stop()

	r := mux.NewRouter()

	r.HandleFunc("/api/dashboard", historyHandler.Dashboard).Methods("GET")

	r.HandleFunc("/api/tickets", ticketHandler.CheckIn).Methods("POST")
	r.HandleFunc("/api/tickets", ticketHandler.ListActive).Methods("GET")
	r.HandleFunc("/api/tickets/{receipt}", ticketHandler.GetTicket).Methods("GET")
	r.HandleFunc("/api/tickets/{receipt}/quote", ticketHandler.QuoteCheckout).Methods("POST")
	r.HandleFunc("/api/tickets/{receipt}/checkout", ticketHandler.ConfirmCheckout).Methods("POST")

	r.HandleFunc("/api/members", memberHandler.Create).Methods("POST")
	r.HandleFunc("/api/members", memberHandler.List).Methods("GET")
	r.HandleFunc("/api/members/{phone}", memberHandler.Get).Methods("GET")
	r.HandleFunc("/api/members/{phone}", memberHandler.Update).Methods("PUT")
	r.HandleFunc("/api/members/{phone}", memberHandler.Delete).Methods("DELETE")

	r.HandleFunc("/api/transactions", historyHandler.Search).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	log.Printf("Server running on port %s, ledger file %s", cfg.Port, cfg.LedgerFile)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
