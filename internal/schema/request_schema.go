package schema

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// use a single instance of Validate, it caches struct info
var RequestValidate *validator.Validate

func init() {
	RequestValidate = validator.New(validator.WithRequiredStructEnabled())

	// Function to check US ZIP codes, optionally with the +4 extension
	errZip := RequestValidate.RegisterValidation("zipCodeValidation", func(fl validator.FieldLevel) bool {
		regex := regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
		value := fl.Field().String()
		return regex.MatchString(value)
	})
	if errZip != nil {
		return
	}

	// Function to check label sizes like 4X6 or 4X8
	errSize := RequestValidate.RegisterValidation("labelSizeValidation", func(fl validator.FieldLevel) bool {
		regex := regexp.MustCompile(`^[0-9]{1,2}X[0-9]{1,2}$`)
		value := fl.Field().String()
		return regex.MatchString(value)
	})
	if errSize != nil {
		return
	}
}

// PartyAddress is supplied by the caller per call and never persisted here.
type PartyAddress struct {
	Name         string `json:"name,omitempty"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,zipCodeValidation"`
}

type PartyContact struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
}

// ParcelSpec carries metric units as supplied by the host; conversion to
// imperial happens right before transmission.
type ParcelSpec struct {
	Length float64 `json:"length" validate:"required,gt=0" description:"cm"`
	Width  float64 `json:"width" validate:"required,gt=0" description:"cm"`
	Height float64 `json:"height" validate:"required,gt=0" description:"cm"`
	Weight float64 `json:"weight" validate:"required,gt=0" description:"kg"`
	Count  int     `json:"count" validate:"required,gte=1"`
}

type RateRequest struct {
	DeliveryAddress PartyAddress    `json:"deliveryAddress" validate:"required"`
	DeliveryContact PartyContact    `json:"deliveryContact" validate:"required"`
	PickupAddress   PartyAddress    `json:"pickupAddress" validate:"required"`
	PickupContact   PartyContact    `json:"pickupContact" validate:"required"`
	Parcels         []ParcelSpec    `json:"parcels" validate:"required,min=1,dive"`
	ValueOfGoods    decimal.Decimal `json:"valueOfGoods"`
}

type BuyRequest struct {
	ServiceProvider string          `json:"serviceProvider"`
	Carrier         string          `json:"carrier" validate:"required"`
	ServiceName     string          `json:"serviceName" validate:"required"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	ServiceID       string          `json:"serviceId" validate:"required"`
	ShipmentID      string          `json:"shipmentId" validate:"required"`
	DeliveryAddress PartyAddress    `json:"deliveryAddress"`
}

type VerifyAddressRequest struct {
	Address PartyAddress `json:"address" validate:"required"`
	Contact PartyContact `json:"contact"`
}
