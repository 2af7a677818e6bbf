package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/adapters/memory"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
	portsrepo "github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/ports/repositories"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/services"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/dto"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/platform/config"
	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/platform/logging"
)

// sitesafe walks a safety record through its full lifecycle against the
// in-memory stores and prints the resulting audit trail. It exercises the
// same in-process contracts the UI collaborators consume.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		RecordRepo: memory.NewRecordRepository(),
		AuditRepo:  memory.NewAuditLogRepository(),
		LinkRepo:   memory.NewLinkRepository(),
	}
	container := services.NewServiceContainer(cfg, repos)

	ctx := logging.CtxWithLogger(context.Background(), logger.With(
		slog.String("session_id", uuid.NewString()),
		slog.String("site", cfg.SiteName),
	))

	logger.Info("Session started", slog.String("role", string(container.Session.CurrentRole())))

	incident, err := container.Record.CreateRecord(ctx, dto.CreateRecordRequest{
		Type:        string(domain.RecordTypeIncident),
		Title:       "Scaffold anchor failure on level 3",
		Description: "Anchor bolt pulled out of the slab during scaffold loading.",
		Priority:    string(domain.PriorityHigh),
		Owner:       "j.okafor",
		Site:        cfg.SiteName,
	}, container.Session.CurrentRole(), "j.okafor")
	if err != nil {
		logger.Error("Failed to create incident", slog.String("error", err.Error()))
		os.Exit(1)
	}

	capa, err := container.Record.CreateRecord(ctx, dto.CreateRecordRequest{
		Type:     string(domain.RecordTypeCAPA),
		Title:    "Re-anchor scaffolding and retrain crew",
		Priority: string(domain.PriorityHigh),
		Owner:    "m.haddad",
	}, container.Session.CurrentRole(), "m.haddad")
	if err != nil {
		logger.Error("Failed to create CAPA", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := container.Record.LinkRecords(ctx, incident.RecordID, capa.RecordID, container.Session.CurrentRole(), "m.haddad"); err != nil {
		logger.Error("Failed to link records", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Walk the incident through the full lifecycle.
	steps := []struct {
		target  domain.RecordStatus
		role    domain.Role
		actor   string
		comment string
	}{
		{domain.StatusSubmitted, domain.RoleFieldWorker, "j.okafor", ""},
		{domain.StatusUnderReview, domain.RoleSupervisor, "p.nilsson", ""},
		{domain.StatusApproved, domain.RoleSafetyOfficer, "a.reyes", ""},
		{domain.StatusClosed, domain.RoleSafetyOfficer, "a.reyes", ""},
		{domain.StatusArchived, domain.RoleAdmin, "site.admin", ""},
	}
	for _, step := range steps {
		if err := container.Session.SetCurrentRole(step.role); err != nil {
			logger.Error("Failed to switch role", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if _, err := container.Record.TransitionRecord(ctx, incident.RecordID, step.target, step.role, step.actor, step.comment); err != nil {
			logger.Error("Transition failed",
				slog.String("target", string(step.target)),
				slog.String("role", string(step.role)),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	trail, err := container.Audit.Trail(ctx, incident.RecordID)
	if err != nil {
		logger.Error("Failed to read audit trail", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, entry := range trail {
		logger.Info("Audit entry",
			slog.String("record_id", entry.RecordID),
			slog.String("action", string(entry.Action)),
			slog.String("from", string(entry.FromStatus)),
			slog.String("to", string(entry.ToStatus)),
			slog.String("user", entry.User),
		)
	}

	logger.Info("Lifecycle complete",
		slog.String("record_number", incident.RecordNumber),
		slog.Int("audit_entries", len(trail)),
	)
}
