package handler

import (
	"errors"
	"net/http"
	"strings"

	"account-service/internal/usecase"
	"account-service/pkg/middleware"
	"account-service/pkg/response"
	xerrors "account-service/pkg/xerrors"
)

type SessionHandler struct {
	uc *usecase.SessionUsecase
}

func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type createSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return r.RemoteAddr
}

// CreateSession handles POST /api/v1/auth/sessions (sign-in).
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	req := new(createSessionRequest)
	if !decodeJSON(w, r, req) {
		return
	}

	view, err := h.uc.SignIn(r.Context(), req.Email, req.Password, clientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, view)
}

// DeleteCurrentSession handles DELETE /api/v1/auth/sessions/current (sign-out).
func (h *SessionHandler) DeleteCurrentSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	if err := h.uc.SignOut(r.Context(), sessionID); err != nil {
		if errors.Is(err, xerrors.ErrSessionNotFound) {
			response.Error(w, http.StatusNotFound, "not found")
			return
		}
		writeUsecaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
