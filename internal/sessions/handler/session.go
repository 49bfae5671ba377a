package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"wakeline/internal/sessions/service"
	httputil "wakeline/pkg/http"
	"wakeline/pkg/logger"
	"wakeline/pkg/model"
)

type SessionHandler struct {
	service service.SessionService
	log     *logger.Logger
}

func NewSessionHandler(service service.SessionService, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

type bookRequest struct {
	RiderID string `json:"rider_id"`
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := model.SessionFilter{
		Window:   model.TimeWindow(strings.ToUpper(query.Get("window"))),
		Query:    query.Get("q"),
		Language: query.Get("language"),
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	sessions, total, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, sessions, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	session, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, session); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) BookSeat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "BookSeat", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	result, err := h.service.BookSeat(r.Context(), id, req.RiderID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "BookSeat", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "BookSeat", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "JoinWaitlist", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	entry, err := h.service.JoinWaitlist(r.Context(), id, req.RiderID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "JoinWaitlist", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, entry); err != nil {
		h.log.Error("failed to write created response", "handler", "JoinWaitlist", "operation", "WriteCreated", "error", err)
	}
}

func (h *SessionHandler) RequestTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "RequestTrip", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	session, err := h.service.RequestTrip(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "RequestTrip", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, session); err != nil {
		h.log.Error("failed to write created response", "handler", "RequestTrip", "operation", "WriteCreated", "error", err)
	}
}

func (h *SessionHandler) ClaimRequest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var claim model.Claim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "ClaimRequest", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	session, err := h.service.ClaimRequest(r.Context(), id, &claim)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ClaimRequest", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, session); err != nil {
		h.log.Error("failed to write success response", "handler", "ClaimRequest", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) ListBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	riderID := ps.ByName("rider_id")

	sessions, err := h.service.ListBookings(r.Context(), riderID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListBookings", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, sessions); err != nil {
		h.log.Error("failed to write success response", "handler", "ListBookings", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/sessions", h.List)
	router.GET("/api/v1/sessions/id/:id", h.GetByID)
	router.POST("/api/v1/sessions/id/:id/book", h.BookSeat)
	router.POST("/api/v1/sessions/id/:id/waitlist", h.JoinWaitlist)
	router.POST("/api/v1/sessions/requests", h.RequestTrip)
	router.POST("/api/v1/sessions/id/:id/claim", h.ClaimRequest)
	router.GET("/api/v1/riders/id/:rider_id/bookings", h.ListBookings)
}
