package handlers

import (
	"log"
	"net/http"

	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/ports"
)

// OrderHandler exposes read-only order retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			OrderID:    o.OrderID,
			Timestamp:  o.Timestamp,
			Zone:       o.Zone,
			Weight:     o.Weight,
			CustomerID: o.CustomerID,
			Subscriber: o.Subscriber,
			Fragile:    o.Fragile,
			Hazardous:  o.Hazardous,
			Perishable: o.Perishable,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
