package api

import (
	"errors"
	"net/http"

	"github.com/okian/legends/internal/domain/model"
	"github.com/okian/legends/pkg/logger"
)

// LegendsHandler serves the legends roster.
type LegendsHandler struct {
	deps Dependencies
}

// NewLegendsHandler creates a new legends handler.
func NewLegendsHandler(deps Dependencies) *LegendsHandler {
	return &LegendsHandler{deps: deps}
}

// HandleDefault handles GET /legends/ with the configured default version.
func (h *LegendsHandler) HandleDefault(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "/legends/", h.deps.DefaultVersion())
}

// HandleVersion returns the handler for GET /{version}/legends/.
func (h *LegendsHandler) HandleVersion(v model.Version) http.HandlerFunc {
	prefix := "/" + string(v) + "/legends/"
	return func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, prefix, v)
	}
}

func (h *LegendsHandler) serve(w http.ResponseWriter, r *http.Request, path string, v model.Version) {
	const op = "api.list_legends"
	if r.Method != http.MethodGet || r.URL.Path != path {
		http.NotFound(w, r)
		return
	}

	unit := model.UnitImperial
	if v.AcceptsUnit() {
		u, err := model.ParseUnit(r.URL.Query().Get("unit"))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid_unit", WrapKind(op, ErrUnprocessable, err))
			return
		}
		unit = u
	}

	legends, err := h.deps.ListLegends(r.Context(), v, unit)
	if err != nil {
		logger.Named("api").Error(r.Context(), "list legends failed",
			logger.String("version", string(v)),
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.Error(err),
		)
		if errors.Is(err, model.ErrInvalidVersion) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, legends)
}
