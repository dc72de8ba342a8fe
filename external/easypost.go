package external

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shippinghub/internal/schema"
)

// Wire schemas for the EasyPost v2 API. Response structs only declare the
// fields the mapping layer reads.

type EasypostAddress struct {
	Name    string `json:"name,omitempty"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type EasypostParcel struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type EasypostShipmentPayload struct {
	ToAddress   EasypostAddress   `json:"to_address"`
	FromAddress EasypostAddress   `json:"from_address"`
	Parcel      EasypostParcel    `json:"parcel"`
	Options     map[string]string `json:"options,omitempty"`
}

type EasypostRate struct {
	ID      string `json:"id"`
	Carrier string `json:"carrier"`
	Service string `json:"service"`
	Rate    string `json:"rate"`
}

type EasypostError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type EasypostFailedParcel struct {
	Errors []string `json:"errors"`
}

type EasypostTracker struct {
	Code         string `json:"code"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
	PublicURL    string `json:"public_url"`
}

type EasypostPostageLabel struct {
	LabelURL     string `json:"label_url"`
	LabelPdfURL  string `json:"label_pdf_url"`
	LabelZplURL  string `json:"label_zpl_url"`
	LabelEpl2URL string `json:"label_epl2_url"`
}

type EasypostShipmentResponse struct {
	ID            string                 `json:"id"`
	Rates         []EasypostRate         `json:"rates"`
	Tracker       EasypostTracker        `json:"tracker"`
	PostageLabel  EasypostPostageLabel   `json:"postage_label"`
	FailedParcels []EasypostFailedParcel `json:"failed_parcels"`
	Error         *EasypostError         `json:"error"`
}

type EasypostVerifyResponse struct {
	Success bool           `json:"success"`
	Errors  []string       `json:"errors"`
	Error   *EasypostError `json:"error"`
}

// GenerateRateOptions maps the provider's rate list onto the uniform rate
// option schema. Every option in one batch shares the provider's shipment
// object id; total price is the unit rate multiplied by the parcel count.
func (epsp *EasypostShipmentResponse) GenerateRateOptions(parcelCount int) ([]schema.RateOption, error) {
	var rateOptions = make([]schema.RateOption, 0, len(epsp.Rates))
	for _, rate := range epsp.Rates {
		unitRate, err := decimal.NewFromString(rate.Rate)
		if err != nil {
			return nil, fmt.Errorf("unparseable rate %q for service %s: %w", rate.Rate, rate.Service, err)
		}
		rateOption := schema.RateOption{
			ServiceProvider: EasypostProvider,
			Carrier:         CarrierName(rate.Carrier, Display),
			ServiceName:     rate.Service,
			TotalPrice:      unitRate.Mul(decimal.NewFromInt(int64(parcelCount))),
			ServiceID:       rate.ID,
			ShipmentID:      epsp.ID,
		}
		rateOptions = append(rateOptions, rateOption)
	}
	return rateOptions, nil
}

// LabelURLForFormat picks the URL out of the format-specific response key.
// PNG labels come back under the bare label_url key.
func (pl *EasypostPostageLabel) LabelURLForFormat(format schema.LabelFormat) string {
	switch format {
	case schema.LabelPDF:
		return pl.LabelPdfURL
	case schema.LabelZPL:
		return pl.LabelZplURL
	case schema.LabelEPL2:
		return pl.LabelEpl2URL
	default:
		return pl.LabelURL
	}
}

// BuildShipmentPayload assembles the quote request body. Country is
// hard-coded to US. Only the destination address ever carries an email, and a
// pickup-side email wins over a delivery-side one; callers rely on this
// routing as observed behavior.
func BuildShipmentPayload(req *schema.RateRequest) EasypostShipmentPayload {
	parcel := ConvertParcel(req.Parcels[0])
	payload := EasypostShipmentPayload{
		ToAddress:   buildAddress(req.DeliveryAddress, req.DeliveryContact),
		FromAddress: buildAddress(req.PickupAddress, req.PickupContact),
		Parcel: EasypostParcel{
			Length: parcel.Length,
			Width:  parcel.Width,
			Height: parcel.Height,
			Weight: parcel.Weight,
		},
	}
	if req.DeliveryContact.Email != "" {
		payload.ToAddress.Email = req.DeliveryContact.Email
	}
	if req.PickupContact.Email != "" {
		payload.ToAddress.Email = req.PickupContact.Email
	}
	return payload
}

// BuildLabelOptions always carries the label size. The provider only
// supports PDF labels at 4X6, so label_format is added for that single
// combination.
func BuildLabelOptions(settings schema.ProviderSettings) map[string]string {
	options := map[string]string{"label_size": settings.LabelSize}
	if settings.LabelSize == "4X6" && settings.LabelFormat == schema.LabelPDF {
		options["label_format"] = string(schema.LabelPDF)
	}
	return options
}

func buildAddress(address schema.PartyAddress, contact schema.PartyContact) EasypostAddress {
	return EasypostAddress{
		Name:    strings.TrimSpace(fmt.Sprintf("%s %s", contact.FirstName, contact.LastName)),
		Street1: address.AddressLine1,
		Street2: address.AddressLine2,
		City:    address.City,
		State:   address.State,
		Zip:     address.Pincode,
		Country: "US",
		Phone:   contact.Phone,
	}
}
