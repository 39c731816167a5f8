package services

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "services-list",
		Method:      http.MethodGet,
		Path:        "/api/services",
		Summary:     "Каталог сервисов",
		Description: "Список активных сервисов, доступных текущему тарифу",
		Tags:        []string{"services"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) mineOp() huma.Operation {
	return huma.Operation{
		OperationID: "services-mine",
		Method:      http.MethodGet,
		Path:        "/api/services/mine",
		Summary:     "Сервисы пользователя",
		Description: "Каталог вместе с состоянием включения и счётчиками использования",
		Tags:        []string{"services"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "services-toggle",
		Method:      http.MethodPut,
		Path:        "/api/services/{slug}/toggle",
		Summary:     "Включение/выключение сервиса",
		Tags:        []string{"services"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) usageOp() huma.Operation {
	return huma.Operation{
		OperationID: "services-usage",
		Method:      http.MethodPost,
		Path:        "/api/services/{slug}/usage",
		Summary:     "Учёт использования сервиса",
		Description: "Инкремент счётчика с проверкой лимита тарифа",
		Tags:        []string{"services"},
		Middlewares: h.middleware,
	}
}
