package external

import "shippinghub/internal/schema"

const (
	cmPerInch = 2.54
	lbPerKg   = 2.20462
)

// ImperialParcel is a parcel spec converted for transmission: the provider
// expects inches and pounds while the host supplies centimetres and
// kilograms.
type ImperialParcel struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
	Count  int
}

func ConvertParcel(parcel schema.ParcelSpec) ImperialParcel {
	return ImperialParcel{
		Length: parcel.Length / cmPerInch,
		Width:  parcel.Width / cmPerInch,
		Height: parcel.Height / cmPerInch,
		Weight: parcel.Weight * lbPerKg,
		Count:  parcel.Count,
	}
}
