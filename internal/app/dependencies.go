package app

import (
	"database/sql"

	"github.com/workcal/workcal/internal/config"
	"github.com/workcal/workcal/internal/utils"
	"github.com/workcal/workcal/pkg/backup"
	"github.com/workcal/workcal/pkg/entry"
	"github.com/workcal/workcal/pkg/goal"
	"github.com/workcal/workcal/pkg/settings"
	"github.com/workcal/workcal/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EntryRepo    entry.Repository
	EntryService entry.Service
	EntryHandler *entry.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler

	BackupService backup.Service
	BackupHandler *backup.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.EntryRepo = entry.NewRepository(db)
	deps.EntryService = entry.NewService(deps.EntryRepo)
	deps.EntryHandler = entry.NewHandler(deps.EntryService)

	deps.GoalRepo = goal.NewRepository(db)
	deps.GoalService = goal.NewService(deps.GoalRepo)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.SettingsRepo = settings.NewRepository(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.StatsService = stats.NewService(deps.EntryService, deps.GoalService, deps.SettingsService, deps.Clock, cfg.Tracking.Year)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	deps.BackupService = backup.NewService(deps.EntryService, deps.GoalService, deps.SettingsService, deps.Clock, cfg.Tracking.Year, cfg.Tracking.Currency)
	deps.BackupHandler = backup.NewHandler(deps.BackupService)

	return deps
}
