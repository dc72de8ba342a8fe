package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"shippinghub/internal/database"
	"shippinghub/internal/exceptions"
	httpclient "shippinghub/internal/http"
	"shippinghub/internal/notify"
	"shippinghub/internal/schema"
)

// Labels are immutable once purchased, so their URLs may sit in the cache.
// The cache is keyed by shipment id and only ever holds complete labels; a
// pending shipment's empty response must never be stored, or the miss would
// be served for the whole expiry after the label becomes available.
const labelCacheNamespace = "easypost label"
const labelCacheExpiry = 24 * time.Hour

// ShipmentService purchases previously quoted rates and pulls labels,
// tracking data and address verification from the provider. Like RateService
// it holds immutable settings and swallows transport failures after
// reporting them to the alert sink.
type ShipmentService struct {
	settings        schema.ProviderSettings
	client          *httpclient.HttpClient
	cache           database.RedisRepository
	sink            notify.Sink
	settingsFormURL string
}

func NewShipmentService(settings schema.ProviderSettings, client *httpclient.HttpClient, cache database.RedisRepository, sink notify.Sink, settingsFormURL string) (*ShipmentService, error) {
	if !settings.Enabled {
		return nil, exceptions.ConfigurationError(fmt.Sprintf("Please enable EasyPost Integration in %s", notify.SettingsFormLink(settingsFormURL)))
	}
	return &ShipmentService{settings: settings, client: client, cache: cache, sink: sink, settingsFormURL: settingsFormURL}, nil
}

// CreateShipment purchases the chosen rate against its quote batch. A
// failed_parcels response means nothing was booked: the first failure's
// errors become a user-visible warning and the return is empty rather than
// an error.
func (ss *ShipmentService) CreateShipment(ctx context.Context, buy *schema.BuyRequest) (*schema.BookedShipment, error) {
	if !ss.settings.Configured() {
		return nil, nil
	}

	body, err := json.Marshal(map[string]any{"rate": map[string]string{"id": buy.ServiceID}})
	if err != nil {
		ss.sink.Failure("creating EasyPost Shipment")
		return nil, nil
	}

	buyURL := fmt.Sprintf("%s/shipments/%s/buy", ss.settings.BaseURL, buy.ShipmentID)
	auth := &httpclient.BasicAuth{Username: ss.settings.APIKey}
	responseJson, err := ss.client.Fetch(ctx, http.MethodPost, &buyURL, body, nil, auth, "easypost buy", 0)
	if err != nil {
		log.Error(err)
		ss.sink.Failure("creating EasyPost Shipment")
		return nil, nil
	}

	var shipmentData EasypostShipmentResponse
	if err := json.Unmarshal(responseJson, &shipmentData); err != nil {
		log.Error(err)
		ss.sink.Failure("creating EasyPost Shipment")
		return nil, nil
	}
	if shipmentData.Error != nil {
		return nil, exceptions.ProviderError(shipmentData.Error.Message)
	}
	if len(shipmentData.FailedParcels) > 0 {
		ss.sink.Warn(fmt.Sprintf("Error occurred while creating Shipment: %s", strings.Join(shipmentData.FailedParcels[0].Errors, ", ")))
		return nil, nil
	}

	return &schema.BookedShipment{
		ServiceProvider: EasypostProvider,
		ShipmentID:      shipmentData.ID,
		Carrier:         CarrierName(buy.Carrier, Wire),
		CarrierService:  buy.ServiceName,
		ShipmentAmount:  buy.TotalPrice,
		AwbNumber:       shipmentData.Tracker.Code,
	}, nil
}

// GetLabel fetches the shipment's label URL. A URL that is already a PDF is
// returned as-is; anything else goes through a second conversion request for
// the configured label format, whose URL sits under a format-specific key.
// A missing label surfaces a notice naming the shipment id, not an error.
// Only a usable URL is written to the cache, so a shipment polled before its
// label exists is fetched again on the next call.
func (ss *ShipmentService) GetLabel(ctx context.Context, shipmentID string) (string, error) {
	if !ss.settings.Configured() {
		return "", nil
	}

	if cached, ok := ss.cache.Get(labelCacheNamespace, shipmentID); ok {
		return string(cached), nil
	}

	labelURL := fmt.Sprintf("%s/shipments/%s/label", ss.settings.BaseURL, shipmentID)
	auth := &httpclient.BasicAuth{Username: ss.settings.APIKey}
	responseJson, err := ss.client.Fetch(ctx, http.MethodGet, &labelURL, nil, nil, auth, labelCacheNamespace, 0)
	if err != nil {
		log.Error(err)
		ss.sink.Failure("printing EasyPost Label")
		return "", nil
	}

	var shipmentData EasypostShipmentResponse
	if err := json.Unmarshal(responseJson, &shipmentData); err != nil {
		log.Error(err)
		ss.sink.Failure("printing EasyPost Label")
		return "", nil
	}

	if url := shipmentData.PostageLabel.LabelURL; strings.HasSuffix(url, ".pdf") {
		ss.cache.AddToChannel(labelCacheNamespace, shipmentID, []byte(url), labelCacheExpiry)
		return url, nil
	}

	converted, err := ss.convertLabel(ctx, shipmentID)
	if err != nil {
		log.Error(err)
		ss.sink.Failure("printing EasyPost Label")
		return "", nil
	}
	if converted == "" {
		ss.sink.Warn(fmt.Sprintf("Please make sure Shipment (ID: %s) exists and is a complete Shipment on EasyPost.", shipmentID))
		return "", nil
	}
	ss.cache.AddToChannel(labelCacheNamespace, shipmentID, []byte(converted), labelCacheExpiry)
	return converted, nil
}

// convertLabel issues the format-conversion request and reads the URL from
// the label_<format>_url key; PNG uses the bare label_url key.
func (ss *ShipmentService) convertLabel(ctx context.Context, shipmentID string) (string, error) {
	convertURL := fmt.Sprintf("%s/shipments/%s/label", ss.settings.BaseURL, shipmentID)
	params := map[string]string{"file_format": string(ss.settings.LabelFormat)}
	auth := &httpclient.BasicAuth{Username: ss.settings.APIKey}
	responseJson, err := ss.client.Fetch(ctx, http.MethodGet, &convertURL, nil, &params, auth, labelCacheNamespace, 0)
	if err != nil {
		return "", err
	}

	var shipmentData EasypostShipmentResponse
	if err := json.Unmarshal(responseJson, &shipmentData); err != nil {
		return "", err
	}
	return shipmentData.PostageLabel.LabelURLForFormat(ss.settings.LabelFormat), nil
}

// GetTrackingData pulls the shipment fresh from the provider and extracts
// its tracker sub-object. Tracking is never cached.
func (ss *ShipmentService) GetTrackingData(ctx context.Context, shipmentID string) (*schema.TrackingInfo, error) {
	if !ss.settings.Configured() {
		return nil, nil
	}

	shipmentURL := fmt.Sprintf("%s/shipments/%s", ss.settings.BaseURL, shipmentID)
	auth := &httpclient.BasicAuth{Username: ss.settings.APIKey}
	responseJson, err := ss.client.Fetch(ctx, http.MethodGet, &shipmentURL, nil, nil, auth, "easypost tracking", 0)
	if err != nil {
		log.Error(err)
		ss.sink.Failure("updating EasyPost Shipment")
		return nil, nil
	}

	var shipmentData EasypostShipmentResponse
	if err := json.Unmarshal(responseJson, &shipmentData); err != nil {
		log.Error(err)
		ss.sink.Failure("updating EasyPost Shipment")
		return nil, nil
	}

	return &schema.TrackingInfo{
		AwbNumber:          shipmentData.Tracker.Code,
		TrackingStatus:     shipmentData.Tracker.Status,
		TrackingStatusInfo: shipmentData.Tracker.StatusDetail,
		TrackingURL:        shipmentData.Tracker.PublicURL,
	}, nil
}

// VerifyAddress submits the address to the provider's verify-and-normalize
// endpoint. All provider error strings are joined with newlines into one
// validation failure.
func (ss *ShipmentService) VerifyAddress(ctx context.Context, address *schema.PartyAddress, contact *schema.PartyContact) (bool, error) {
	if !ss.settings.Configured() {
		return false, nil
	}

	payload := buildAddress(*address, *contact)
	payload.Email = contact.Email
	body, err := json.Marshal(map[string]any{"address": payload})
	if err != nil {
		ss.sink.Failure("verifying EasyPost Address")
		return false, nil
	}

	verifyURL := ss.settings.BaseURL + "/addresses/create_and_verify"
	auth := &httpclient.BasicAuth{Username: ss.settings.APIKey}
	responseJson, err := ss.client.Fetch(ctx, http.MethodPost, &verifyURL, body, nil, auth, "easypost verify", 0)
	if err != nil {
		log.Error(err)
		ss.sink.Failure("verifying EasyPost Address")
		return false, nil
	}

	var verifyData EasypostVerifyResponse
	if err := json.Unmarshal(responseJson, &verifyData); err != nil {
		log.Error(err)
		ss.sink.Failure("verifying EasyPost Address")
		return false, nil
	}
	if verifyData.Error != nil {
		return false, exceptions.ProviderError(verifyData.Error.Message)
	}
	if !verifyData.Success {
		return false, exceptions.ValidationError(strings.Join(verifyData.Errors, "\n"))
	}
	return true, nil
}
