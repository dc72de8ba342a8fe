package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"shippinghub/internal/exceptions"
	httpclient "shippinghub/internal/http"
	"shippinghub/internal/notify"
	"shippinghub/internal/schema"
)

// RateService builds shipment quote requests, submits them to the provider
// and normalizes the returned carrier rates. Settings are captured at
// construction and never change for the service's lifetime.
type RateService struct {
	settings        schema.ProviderSettings
	client          *httpclient.HttpClient
	sink            notify.Sink
	settingsFormURL string
}

// NewRateService fails loudly when the provider is disabled; per-call
// degraded mode only applies once a service has been constructed.
func NewRateService(settings schema.ProviderSettings, client *httpclient.HttpClient, sink notify.Sink, settingsFormURL string) (*RateService, error) {
	if !settings.Enabled {
		return nil, exceptions.ConfigurationError(fmt.Sprintf("Please enable EasyPost Integration in %s", notify.SettingsFormLink(settingsFormURL)))
	}
	return &RateService{settings: settings, client: client, sink: sink, settingsFormURL: settingsFormURL}, nil
}

// GetAvailableServices submits a shipment-quote request and returns one
// normalized RateOption per carrier rate. Only the first parcel spec is used;
// multi-parcel shipments are not supported. A disabled or keyless provider
// yields an empty result without error, and any transport or parse failure is
// reported to the alert sink and swallowed.
//
// The request's value of goods is accepted for interface parity with other
// providers but is not transmitted; the provider derives insurance separately.
func (rs *RateService) GetAvailableServices(ctx context.Context, req *schema.RateRequest) ([]schema.RateOption, error) {
	if !rs.settings.Configured() {
		return nil, nil
	}
	if len(req.Parcels) == 0 {
		return nil, exceptions.ValidationError("at least one parcel spec is required")
	}

	payload := BuildShipmentPayload(req)
	payload.Options = BuildLabelOptions(rs.settings)
	body, err := json.Marshal(map[string]any{"shipment": payload})
	if err != nil {
		rs.sink.Failure("fetching EasyPost prices")
		return nil, nil
	}

	shipmentURL := rs.settings.BaseURL + "/shipments"
	auth := &httpclient.BasicAuth{Username: rs.settings.APIKey}
	responseJson, err := rs.client.Fetch(ctx, http.MethodPost, &shipmentURL, body, nil, auth, "easypost rates", 0)
	if err != nil {
		log.Error(err)
		rs.sink.Failure("fetching EasyPost prices")
		return nil, nil
	}

	var shipmentData EasypostShipmentResponse
	if err := json.Unmarshal(responseJson, &shipmentData); err != nil {
		log.Error(err)
		rs.sink.Failure("fetching EasyPost prices")
		return nil, nil
	}
	if shipmentData.Error != nil {
		return nil, exceptions.ProviderError(shipmentData.Error.Message)
	}

	rateOptions, err := shipmentData.GenerateRateOptions(req.Parcels[0].Count)
	if err != nil {
		log.Error(err)
		rs.sink.Failure("fetching EasyPost prices")
		return nil, nil
	}
	return rateOptions, nil
}
