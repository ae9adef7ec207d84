package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Day entries and notes
	r.HandleFunc("/api/entry/{date}", deps.EntryHandler.SaveDay).Methods("PUT")
	r.HandleFunc("/api/entry/{date}", deps.EntryHandler.DeleteDay).Methods("DELETE")
	r.HandleFunc("/api/entry", deps.EntryHandler.GetEntries).Methods("GET")
	r.HandleFunc("/api/search", deps.EntryHandler.Search).Queries("q", "{q}").Methods("GET")

	// Goals
	r.HandleFunc("/api/goal/monthly/{month}", deps.GoalHandler.SetMonthlyGoal).Methods("PUT")
	r.HandleFunc("/api/goal/monthly/{month}", deps.GoalHandler.GetMonthlyGoal).Methods("GET")
	r.HandleFunc("/api/goal/yearly", deps.GoalHandler.SetYearlyGoal).Methods("PUT")
	r.HandleFunc("/api/goal/yearly", deps.GoalHandler.GetYearlyGoal).Methods("GET")

	// Settings
	r.HandleFunc("/api/settings/rate", deps.SettingsHandler.GetRate).Methods("GET")
	r.HandleFunc("/api/settings/rate", deps.SettingsHandler.SetRate).Methods("PUT")

	// Stats
	r.HandleFunc("/api/stats/month", deps.StatsHandler.GetMonthSummary).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/stats/year", deps.StatsHandler.GetYearSummary).Methods("GET")

	// Backup
	r.HandleFunc("/api/backup", deps.BackupHandler.Download).Methods("GET")
	r.HandleFunc("/api/backup", deps.BackupHandler.Upload).Methods("POST")
}
