package invoice

import "github.com/shopspring/decimal"

// Shipment cost targets a host administrator may configure.
const (
	TargetItemsList  = "Items List"
	TargetTaxesList  = "Taxes and Charges List"
	ChargeTypeActual = "Actual"
)

// Settings is the host-side shipping configuration block served from the
// application config.
type Settings struct {
	ShipmentCostTarget  string `yaml:"shipment_cost_target" json:"shipmentCostTarget"`
	ItemCode            string `yaml:"item_code" json:"itemCode"`
	ShippingDescription string `yaml:"shipping_description" json:"shippingDescription"`
	ShippingAccount     string `yaml:"shipping_account" json:"shippingAccount"`
}

// InvoiceItem is one line of a draft sales invoice. Description and UOM are
// owned by the host's item master; the applier leaves them for the host to
// fill in on persist.
type InvoiceItem struct {
	ItemCode      string          `json:"itemCode"`
	Description   string          `json:"description,omitempty"`
	Qty           decimal.Decimal `json:"qty"`
	UOM           string          `json:"uom,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	PriceListRate decimal.Decimal `json:"priceListRate"`
}

// TaxCharge is one tax/charge line. An "Actual" charge type carries its
// amount directly instead of computing it from the rate.
type TaxCharge struct {
	ChargeType  string          `json:"chargeType"`
	Description string          `json:"description"`
	AccountHead string          `json:"accountHead"`
	Rate        decimal.Decimal `json:"rate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
}

// SalesInvoice is the draft invoice as handed over by the host workflow. The
// applier mutates it in place and hands it back for the host to persist.
type SalesInvoice struct {
	Customer string        `json:"customer,omitempty"`
	Items    []InvoiceItem `json:"items"`
	Taxes    []TaxCharge   `json:"taxes"`
	Shipment string        `json:"shipment,omitempty"`
}
