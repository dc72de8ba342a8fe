package external

import (
	"time"

	"shippinghub/internal/database"
	httpclient "shippinghub/internal/http"
	"shippinghub/internal/notify"
	"shippinghub/internal/schema"
	env "shippinghub/internal/secret"
)

// ShippingServiceFactory wires the provider settings record from the
// environment into the two shipping clients. Settings are read once here;
// the services never observe later changes.
type ShippingServiceFactory struct {
	Rates     *RateService
	Shipments *ShipmentService
}

func ProviderSettingsFromEnv(e *env.Manager) schema.ProviderSettings {
	return schema.ProviderSettings{
		Enabled:     *e.EasypostEnabled,
		APIKey:      *e.EasypostAPIKey,
		LabelFormat: schema.LabelFormat(*e.LabelFormat),
		LabelSize:   *e.LabelSize,
		BaseURL:     *e.EasypostURL,
		Timeout:     time.Duration(*e.RequestTimeout) * time.Second,
	}
}

func NewShippingServiceFactory(e *env.Manager, client *httpclient.HttpClient, cache database.RedisRepository, sink notify.Sink) (*ShippingServiceFactory, error) {
	settings := ProviderSettingsFromEnv(e)
	rates, err := NewRateService(settings, client, sink, *e.SettingsFormURL)
	if err != nil {
		return nil, err
	}
	shipments, err := NewShipmentService(settings, client, cache, sink, *e.SettingsFormURL)
	if err != nil {
		return nil, err
	}
	return &ShippingServiceFactory{Rates: rates, Shipments: shipments}, nil
}
