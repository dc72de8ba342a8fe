package handlers

import (
	"encoding/json"
	"net/http"

	"shippinghub/external"
	"shippinghub/internal/database"
	"shippinghub/internal/exceptions"
	"shippinghub/internal/middleware"
	"shippinghub/internal/schema"
)

// BuyShipmentHandler purchases the chosen rate. A soft failure (the provider
// reports failed parcels, or a swallowed transport error) answers 202 with an
// empty body: nothing was booked, the warning went to the alert sink.
func BuyShipmentHandler(factory *external.ShippingServiceFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := r.Context().Value(middleware.BuyRequestKey).(schema.BuyRequest)

		booked, err := factory.Shipments.CreateShipment(r.Context(), &req)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		if booked == nil {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_ = json.NewEncoder(w).Encode(booked)
	})
}

// LabelHandler answers the label URL for a booked shipment. Freshly fetched
// URLs are flushed to the cache in the background after responding.
func LabelHandler(factory *external.ShippingServiceFactory, rr database.RedisRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shipmentID := r.PathValue("shipmentID")

		labelURL, err := factory.Shipments.GetLabel(r.Context(), shipmentID)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		if labelURL == "" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Label Not Found", "shipmentId": shipmentID})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"labelUrl": labelURL})
		go func() { _ = rr.Set(r.URL.String()) }()
	})
}

// TrackingHandler pulls tracking data fresh from the provider on every call.
func TrackingHandler(factory *external.ShippingServiceFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shipmentID := r.PathValue("shipmentID")

		tracking, err := factory.Shipments.GetTrackingData(r.Context(), shipmentID)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(tracking)
	})
}

// VerifyAddressHandler runs the provider's verify-and-normalize check.
func VerifyAddressHandler(factory *external.ShippingServiceFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := r.Context().Value(middleware.VerifyRequestKey).(schema.VerifyAddressRequest)

		verified, err := factory.Shipments.VerifyAddress(r.Context(), &req.Address, &req.Contact)
		if err != nil {
			exceptions.ShippingErrorHandler(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]bool{"verified": verified})
	})
}
