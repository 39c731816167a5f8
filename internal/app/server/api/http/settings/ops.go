package settings

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-get",
		Method:      http.MethodGet,
		Path:        "/api/settings",
		Summary:     "Настройки пользователя",
		Description: "Возвращает настройки, создавая значения по умолчанию при первом обращении",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-update",
		Method:      http.MethodPut,
		Path:        "/api/settings",
		Summary:     "Частичное обновление настроек",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) resetOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-reset",
		Method:      http.MethodPost,
		Path:        "/api/settings/reset",
		Summary:     "Сброс настроек к значениям по умолчанию",
		Tags:        []string{"settings"},
		Middlewares: h.middleware,
	}
}
