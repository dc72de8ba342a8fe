package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

type LabelFormat string

const (
	LabelPNG  LabelFormat = "png"
	LabelPDF  LabelFormat = "pdf"
	LabelZPL  LabelFormat = "zpl"
	LabelEPL2 LabelFormat = "epl2"
)

// ProviderSettings is the provider settings record, loaded once per client
// construction and immutable for the client's lifetime.
type ProviderSettings struct {
	Enabled     bool
	APIKey      string
	LabelFormat LabelFormat
	LabelSize   string
	BaseURL     string
	Timeout     time.Duration
}

// Configured reports whether network operations are allowed. Per-call
// operations no-op with an empty result when this is false.
func (s ProviderSettings) Configured() bool {
	return s.Enabled && s.APIKey != ""
}

// RateOption is one normalized quote out of a rate-shopping batch. It is
// ephemeral: the caller persists the chosen option and re-supplies ServiceID
// and ShipmentID to the booking step.
type RateOption struct {
	ServiceProvider string          `json:"serviceProvider"`
	Carrier         string          `json:"carrier"`
	ServiceName     string          `json:"serviceName"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	ServiceID       string          `json:"serviceId"`
	ShipmentID      string          `json:"shipmentId"`
}

// BookedShipment is the canonical shipment record handed back to the host
// system for persistence. Carrier is in wire (lowercase) form.
type BookedShipment struct {
	ServiceProvider string          `json:"serviceProvider"`
	ShipmentID      string          `json:"shipmentId"`
	Carrier         string          `json:"carrier"`
	CarrierService  string          `json:"carrierService"`
	ShipmentAmount  decimal.Decimal `json:"shipmentAmount"`
	AwbNumber       string          `json:"awbNumber"`
}

// TrackingInfo is fetched fresh on each call, never cached.
type TrackingInfo struct {
	AwbNumber          string `json:"awbNumber"`
	TrackingStatus     string `json:"trackingStatus"`
	TrackingStatusInfo string `json:"trackingStatusInfo"`
	TrackingURL        string `json:"trackingUrl"`
}
