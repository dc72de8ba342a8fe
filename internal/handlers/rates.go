package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shippinghub/external"
	"shippinghub/internal/exceptions"
	"shippinghub/internal/middleware"
	"shippinghub/internal/schema"
)

// RateShoppingHandler submits the validated quote request to the provider
// and returns the normalized rate options. A degraded provider (disabled,
// keyless, or a swallowed transport failure) yields a null body rather than
// an empty list; callers tolerate both.
func RateShoppingHandler(factory *external.ShippingServiceFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := r.Context().Value(middleware.RateRequestKey).(schema.RateRequest)

		rateOptions, err := factory.Rates.GetAvailableServices(r.Context(), &req)
		if err != nil {
			var shipErr *exceptions.ShippingError
			if errors.As(err, &shipErr) {
				exceptions.ShippingErrorHandler(w, err)
				return
			}
			exceptions.InternalErrorHandler(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(rateOptions)
	})
}
