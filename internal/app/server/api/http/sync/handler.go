package sync

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"finbox/internal/app/server/api/http/middleware/auth"
	"finbox/internal/domain/backup"
)

type Handler struct {
	service    backup.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service backup.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.backupOp(), h.backup)
	huma.Register(api, h.restoreOp(), h.restore)
	huma.Register(api, h.smartSyncOp(), h.smartSync)
	huma.Register(api, h.selectiveSyncOp(), h.selectiveSync)
	huma.Register(api, h.statusOp(), h.status)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) backup(ctx context.Context, input *backupInput) (*backupOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	res, err := h.service.Backup(ctx, userID, input.Body.Data, input.Body.Version, input.Body.Timestamp)
	if err != nil {
		return &backupOutput{
			Body: BackupResponse{Success: false, Message: "Backup failed", Error: err.Error()},
		}, nil
	}

	return &backupOutput{
		Body: BackupResponse{
			Success:        true,
			Stats:          &res.Stats,
			BackupID:       res.BackupID,
			LastBackupTime: &res.LastBackupTime,
		},
	}, nil
}

func (h *Handler) restore(ctx context.Context, _ *restoreInput) (*restoreOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	res, err := h.service.Restore(ctx, userID)
	if errors.Is(err, backup.ErrNoBackup) {
		return &restoreOutput{
			Body: RestoreResponse{Success: false, Message: "No backup found"},
		}, nil
	}
	if err != nil {
		return &restoreOutput{
			Body: RestoreResponse{Success: false, Message: "Restore failed", Error: err.Error()},
		}, nil
	}

	return &restoreOutput{
		Body: RestoreResponse{
			Success:        true,
			Data:           res.Data,
			Stats:          &res.Stats,
			LastBackupTime: &res.LastBackupTime,
			Version:        res.Version,
		},
	}, nil
}

func (h *Handler) smartSync(ctx context.Context, input *smartSyncInput) (*smartSyncOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	opts := backup.MergeOptions{
		PreferCloud: input.Body.PreferCloud,
		Strict:      input.Body.Strict,
	}
	res, err := h.service.SmartSync(ctx, userID, input.Body.LocalData, input.Body.LastSyncTime, opts)
	if err != nil {
		return &smartSyncOutput{
			Body: SmartSyncResponse{Success: false, Message: "Sync failed", Error: err.Error()},
		}, nil
	}

	return &smartSyncOutput{
		Body: SmartSyncResponse{
			Success:    true,
			MergedData: res.MergedData,
			Stats:      &res.Stats,
			Conflicts:  res.Conflicts,
		},
	}, nil
}

func (h *Handler) selectiveSync(ctx context.Context, input *selectiveSyncInput) (*selectiveSyncOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.SelectiveSync(ctx, userID, input.Body.Data, input.Body.BoxNames)
	if errors.Is(err, backup.ErrNoBoxNames) {
		return &selectiveSyncOutput{
			Body: SelectiveSyncResponse{Success: false, Message: "boxNames must be a non-empty list", Error: err.Error()},
		}, nil
	}
	if err != nil {
		return &selectiveSyncOutput{
			Body: SelectiveSyncResponse{Success: false, Message: "Selective sync failed", Error: err.Error()},
		}, nil
	}

	return &selectiveSyncOutput{
		Body: SelectiveSyncResponse{Success: true, Message: "Selected boxes synced"},
	}, nil
}

func (h *Handler) status(ctx context.Context, _ *statusInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	res, err := h.service.Status(ctx, userID)
	if err != nil {
		return &statusOutput{
			Body: StatusResponse{Success: false, Message: "Status failed", Error: err.Error()},
		}, nil
	}

	return &statusOutput{
		Body: StatusResponse{
			Success:        true,
			HasBackup:      res.HasBackup,
			LastBackupTime: res.LastBackupTime,
			Version:        res.Version,
			Stats:          res.Stats,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, _ *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID); err != nil {
		return &deleteOutput{
			Body: DeleteResponse{Success: false, Message: "Delete failed", Error: err.Error()},
		}, nil
	}

	return &deleteOutput{
		Body: DeleteResponse{Success: true, Message: "Backup deleted"},
	}, nil
}
