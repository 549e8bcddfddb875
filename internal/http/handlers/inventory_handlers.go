package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/sales-analytics/internal/analytics"
)

// InventoryMovements godoc
// @Summary Stock movement summary per product
// @Tags inventory
// @Produce json
// @Param days query int false "Look-back window in days" default(30)
// @Param limit query int false "Number of products" default(20)
// @Success 200 {object} Envelope{data=MovementsResult}
// @Failure 400 {object} Envelope "Invalid parameter"
// @Failure 500 {object} Envelope "Internal error"
// @Router /api/inventory/movements [get]
func (h *Handler) InventoryMovements(w http.ResponseWriter, r *http.Request) {
	days, err := intParam(r, "days", h.settings.MovementDays, 1, h.settings.MaxDays)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}
	limit, err := intParam(r, "limit", h.settings.MovementLimit, 1, h.settings.MaxLimit)
	if err != nil {
		h.writeBadRequest(w, r, err.Error())
		return
	}

	rows, err := h.inventory.MovementSummary(r.Context(), h.now().AddDate(0, 0, -days), limit)
	if err != nil {
		h.writeFailure(w, r, err, "could not load inventory movements")
		return
	}
	h.writeSuccess(w, r, MovementsResult{Days: days, Limit: limit, Products: analytics.SummarizeMovements(rows)}, "")
}
