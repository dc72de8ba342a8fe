package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"shippinghub/internal/exceptions"
	"shippinghub/internal/invoice"
	"shippinghub/internal/middleware"
)

type applyShippingCostRequest struct {
	Invoice       invoice.SalesInvoice `json:"invoice"`
	ShippingTotal decimal.Decimal      `json:"shippingTotal"`
}

// ApplyShippingCostHandler patches the shipping total into the submitted
// draft invoice per the configured cost target and hands the mutated draft
// back for the host to persist.
func ApplyShippingCostHandler(applier *invoice.Applier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, _ := r.Context().Value(middleware.ShippingSettingsKey).(invoice.Settings)

		var req applyShippingCostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			exceptions.RequestErrorHandler(w, fmt.Errorf("invalid request body: %w", err))
			return
		}

		draft, err := applier.ApplyShippingCost(settings, &req.Invoice, req.ShippingTotal)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(draft)
	})
}

// SettingsCheckHandler reports whether the shipping settings are complete
// for the configured cost target.
func SettingsCheckHandler(applier *invoice.Applier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, _ := r.Context().Value(middleware.ShippingSettingsKey).(invoice.Settings)

		status, err := applier.CheckSettingsIfComplete(settings)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	})
}
