package handler

import (
	"net/http"

	"account-service/internal/domain"
	"account-service/internal/usecase"
	"account-service/pkg/middleware"
	"account-service/pkg/response"
)

type TicketHandler struct {
	uc *usecase.TicketUsecase
}

func NewTicketHandler(uc *usecase.TicketUsecase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// CreateTicket handles POST /api/v1/tickets.
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok || accountID == "" {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req := new(domain.CreateTicketRequest)
	if !decodeJSON(w, r, req) {
		return
	}

	view, err := h.uc.CreateTicket(r.Context(), accountID, req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/tickets/"+view.ID)
	response.JSON(w, http.StatusCreated, view)
}
