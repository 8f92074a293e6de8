package handler

import (
	"errors"
	"net/http"

	"account-service/internal/authz"
	"account-service/internal/domain"
	"account-service/internal/usecase"
	"account-service/pkg/middleware"
	"account-service/pkg/response"
	xerrors "account-service/pkg/xerrors"

	"github.com/go-chi/chi/v5"
)

type AccountHandler struct {
	uc *usecase.AccountUsecase
}

func NewAccountHandler(uc *usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// CreateAccount handles POST /api/v1/users.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req := new(domain.CreateAccountRequest)
	if !decodeJSON(w, r, req) {
		return
	}

	view, err := h.uc.Register(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/users/"+view.ID)
	response.JSON(w, http.StatusCreated, view)
}

// ShowAccount handles GET /api/v1/users/{id}. The missing-resource check
// runs before authorization, so an unknown id is always a 404.
func (h *AccountHandler) ShowAccount(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")
	accountID, _ := middleware.GetAccountID(r.Context())
	principal := authz.Principal{AccountID: accountID}

	view, err := h.uc.GetAccount(r.Context(), principal, targetID)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrAccountNotFound):
			response.Error(w, http.StatusNotFound, "not found")
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Error(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeUsecaseError(w, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, view)
}

func (h *AccountHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
