package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"auth-web-server/internal/apperrors"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение пары access и refresh токенов по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ApiResponse "Пара токенов"
// @Failure 400 {object} requestresponse.ApiResponse "Некорректный JSON или пустые поля"
// @Failure 404 {object} requestresponse.ApiResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ApiResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, fmt.Errorf("некорректный JSON: %w", apperrors.ErrBadRequest))
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, fmt.Errorf("email и password обязательны: %w", apperrors.ErrBadRequest))
		return
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, requestresponse.CodeSuccessDefault, requestresponse.LoginData{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary Завершение авторизованной сессии
// @Description Удаляет refresh токен пользователя из хранилища. Принимается токен любого типа. Повторный logout безвреден.
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ApiResponse
// @Failure 400 {object} requestresponse.ApiResponse "Токен отсутствует"
// @Failure 401 {object} requestresponse.ApiResponse "Невалидный токен"
// @Router /api/v1/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authorizationHeader := r.Header.Get("Authorization")

	if err := h.AuthenticationService.Logout(r.Context(), authorizationHeader); err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, requestresponse.CodeSuccessDefault, nil)
}

// RefreshToken godoc
// @Summary Обновление access токена
// @Description Выпускает новый access токен по действующему refresh токену. Refresh токен не перевыпускается.
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <refresh_token>)
// @Success 200 {object} requestresponse.ApiResponse "Новый access токен"
// @Failure 400 {object} requestresponse.ApiResponse "Токен отсутствует"
// @Failure 401 {object} requestresponse.ApiResponse "Невалидный, просроченный или чужой refresh токен"
// @Failure 500 {object} requestresponse.ApiResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	authorizationHeader := r.Header.Get("Authorization")

	accessToken, err := h.AuthenticationService.RefreshAccessToken(r.Context(), authorizationHeader)
	if err != nil {
		sendErrorResponse(w, err)
		return
	}

	sendSuccess(w, http.StatusOK, requestresponse.CodeSuccessDefault, requestresponse.RefreshData{
		AccessToken: accessToken,
	})
}
