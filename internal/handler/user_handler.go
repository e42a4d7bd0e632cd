package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// CreateUser godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт нового пользователя с email, паролем и именем
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UserCreateRequest true "Тело запроса"
// @Success 201 {object} requestresponse.ApiResponse
// @Failure 400 {object} requestresponse.ApiResponse "Некорректный JSON или пустые поля"
// @Failure 409 {object} requestresponse.ApiResponse "Email уже занят"
// @Failure 500 {object} requestresponse.ApiResponse "Внутренняя ошибка сервера"
// @Router /api/v1/user/create [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, fmt.Errorf("некорректный JSON: %w", apperrors.ErrBadRequest))
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, fmt.Errorf("email и password обязательны: %w", apperrors.ErrBadRequest))
		return
	}

	if _, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.Name); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusCreated, requestresponse.CodeSuccessCreated, nil)
}

// GetCurrentUser godoc
// @Summary Получение текущего пользователя
// @Description Возвращает данные пользователя, которому принадлежит access токен
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 401 {object} requestresponse.ApiResponse "Не авторизован"
// @Failure 404 {object} requestresponse.ApiResponse "Пользователь не найден"
// @Router /api/v1/user/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	authUser, err := security.GetAuthenticatedUser(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), authUser.UUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, requestresponse.CodeSuccessDefault, requestresponse.UserData{
		UUID:  user.UUID,
		Email: user.Email,
		Name:  user.Name,
	})
}

// GetUser godoc
// @Summary Получение пользователя по UUID
// @Description Возвращает данные пользователя. Доступен только самому пользователю.
// @Tags Users
// @Produce json
// @Param uuid path string true "UUID пользователя"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 401 {object} requestresponse.ApiResponse "Не авторизован"
// @Failure 403 {object} requestresponse.ApiResponse "Чужая учётная запись"
// @Failure 404 {object} requestresponse.ApiResponse "Пользователь не найден"
// @Router /api/v1/user/{uuid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	authUser, err := security.GetAuthenticatedUser(r.Context())
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	targetUUID := chi.URLParam(r, "uuid")
	if targetUUID != authUser.UUID {
		sendErrorResponse(w, apperrors.ErrForbidden)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), targetUUID)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, requestresponse.CodeSuccessDefault, requestresponse.UserData{
		UUID:  user.UUID,
		Email: user.Email,
		Name:  user.Name,
	})
}
