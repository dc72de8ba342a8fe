package external

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CallDirection tells CarrierName which textual form a carrier name should
// take. API responses and outbound purchase calls use the wire form
// ("easypost"); anything shown to a user takes the display form ("EasyPost").
type CallDirection string

const (
	Display CallDirection = "display"
	Wire    CallDirection = "wire"
)

// EasypostProvider is the service provider tag stamped on every normalized
// rate option and booked shipment.
const EasypostProvider = "EasyPost"

// CarrierName is the single bidirectional casing transform. For the
// special-cased provider token the two directions are exact inverses; every
// other carrier name passes through plain upper/lower casing.
func CarrierName(name string, direction CallDirection) string {
	if name == "easypost" || name == EasypostProvider {
		if direction == Display {
			return EasypostProvider
		}
		return "easypost"
	}
	if direction == Display {
		return cases.Upper(language.Und).String(name)
	}
	return cases.Lower(language.Und).String(name)
}
