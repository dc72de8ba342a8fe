package middleware

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"shippinghub/config/domain"
	"shippinghub/internal/exceptions"
	"shippinghub/internal/invoice"
)

type settingsContextKey string

const ShippingSettingsKey settingsContextKey = "shippingSettings"

// GetShippingSettings reads the host-side shipping settings block from
// config.yaml per request, so administrators can change the invoice target
// without a restart.
func GetShippingSettings(serviceName string) Middleware {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			config := domain.Config{}
			currentDir, err := os.Getwd()
			if err != nil {
				log.Fatalf("Failed to setup config: %v", err)
			}
			data, err := os.ReadFile(filepath.Join(currentDir, "config.yaml"))
			if err != nil {
				exceptions.InternalErrorHandler(w, err)
				return
			}
			if err = config.SetFromBytes(data); err != nil {
				exceptions.InternalErrorHandler(w, err)
				return
			}
			var settings invoice.Settings
			if err = config.Section(serviceName, "shipping", &settings); err != nil {
				exceptions.InternalErrorHandler(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), ShippingSettingsKey, settings)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
