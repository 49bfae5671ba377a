package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wakeline/internal/operators/service"
	apperrors "wakeline/pkg/errors"
	httputil "wakeline/pkg/http"
	"wakeline/pkg/logger"
	"wakeline/pkg/model"
)

type OperatorHandler struct {
	service service.OperatorService
	log     *logger.Logger
}

func NewOperatorHandler(service service.OperatorService, log *logger.Logger) *OperatorHandler {
	return &OperatorHandler{
		service: service,
		log:     log,
	}
}

func (h *OperatorHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Creation is an administrative action. The actor role is recorded for
	// the audit trail; enforcement lives at the gateway.
	if role := r.Header.Get("X-Actor-Role"); role != "" {
		h.log.Info("Operator creation requested", "actor_role", role)
	}

	var operator model.Operator
	if err := json.NewDecoder(r.Body).Decode(&operator); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	created, err := h.service.Create(r.Context(), &operator)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, created); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *OperatorHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	operators, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, operators, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *OperatorHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	operator, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, operator); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *OperatorHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/operators", h.Create)
	router.GET("/api/v1/operators", h.List)
	router.GET("/api/v1/operators/id/:id", h.GetByID)
}
