package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) backupOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-backup",
		Method:      http.MethodPost,
		Path:        "/api/sync/backup",
		Summary:     "Полный бэкап данных",
		Description: "Целиком заменяет облачную копию данных пользователя",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) restoreOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-restore",
		Method:      http.MethodGet,
		Path:        "/api/sync/restore",
		Summary:     "Восстановление из облачной копии",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) smartSyncOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-smart",
		Method:      http.MethodPost,
		Path:        "/api/sync/smart-sync",
		Summary:     "Умная синхронизация",
		Description: "Сливает локальные данные клиента с облачной копией",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) selectiveSyncOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-selective",
		Method:      http.MethodPost,
		Path:        "/api/sync/selective",
		Summary:     "Выборочная синхронизация",
		Description: "Заменяет только перечисленные боксы облачной копии",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-status",
		Method:      http.MethodGet,
		Path:        "/api/sync/status",
		Summary:     "Статус облачной копии",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-delete-backup",
		Method:      http.MethodDelete,
		Path:        "/api/sync/backup",
		Summary:     "Удаление облачной копии",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}
