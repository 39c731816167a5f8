package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/api/user/register",
		Summary:     "Регистрация пользователя",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/api/user/login",
		Summary:     "Авторизация пользователя",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-me",
		Method:      http.MethodGet,
		Path:        "/api/user/me",
		Summary:     "Профиль текущего пользователя",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) updateProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-update-profile",
		Method:      http.MethodPut,
		Path:        "/api/user/profile",
		Summary:     "Обновление профиля",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) changePasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-change-password",
		Method:      http.MethodPut,
		Path:        "/api/user/password",
		Summary:     "Смена пароля",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-logout",
		Method:      http.MethodPost,
		Path:        "/api/user/logout",
		Summary:     "Выход: отзыв текущего токена",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) upgradeOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-upgrade",
		Method:      http.MethodPost,
		Path:        "/api/user/upgrade",
		Summary:     "Переход на premium-подписку",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) deleteAccountOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/user/account",
		Summary:     "Удаление учётной записи со всеми данными",
		Tags:        []string{"users"},
		Middlewares: h.authMiddleware,
	}
}
