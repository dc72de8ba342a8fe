package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"shippinghub/internal/exceptions"
	"shippinghub/internal/schema"
)

type bodyContextKey string

const (
	RateRequestKey   bodyContextKey = "rateRequest"
	BuyRequestKey    bodyContextKey = "buyRequest"
	VerifyRequestKey bodyContextKey = "verifyRequest"
)

// validateStruct validates a struct and writes a formatted error if validation fails.
func validateStruct(w http.ResponseWriter, params interface{}) bool {
	if err := schema.RequestValidate.Struct(params); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			invalidField := fmt.Errorf("invalid field value in '%s': %v", e.Field(), e.Value())
			exceptions.RequestErrorHandler(w, invalidField)
			return false
		}
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		exceptions.RequestErrorHandler(w, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

// RateRequestValidation decodes and validates the rate-shopping request body.
func RateRequestValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req schema.RateRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !validateStruct(w, req) {
			return
		}
		ctx := context.WithValue(r.Context(), RateRequestKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BuyRequestValidation decodes and validates the purchase request body. The
// shipment id in the path must match the quote batch the rate came from.
func BuyRequestValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req schema.BuyRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ShipmentID == "" {
			req.ShipmentID = r.PathValue("shipmentID")
		}
		if !validateStruct(w, req) {
			return
		}
		if pathID := r.PathValue("shipmentID"); pathID != "" && pathID != req.ShipmentID {
			exceptions.RequestErrorHandler(w, fmt.Errorf("shipment id mismatch between path and body"))
			return
		}
		ctx := context.WithValue(r.Context(), BuyRequestKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyRequestValidation decodes and validates the address verification body.
func VerifyRequestValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req schema.VerifyAddressRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !validateStruct(w, req) {
			return
		}
		ctx := context.WithValue(r.Context(), VerifyRequestKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
