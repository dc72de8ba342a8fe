package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shippinghub/internal/exceptions"
	"shippinghub/internal/notify"
)

// Applier patches a computed shipping total into a draft sales invoice,
// either as a line item or as an actual-type tax charge depending on the
// configured target. All other invoice lines are left untouched.
type Applier struct {
	settingsFormURL string
}

func NewApplier(settingsFormURL string) *Applier {
	return &Applier{settingsFormURL: settingsFormURL}
}

func (a *Applier) link() string {
	return notify.SettingsFormLink(a.settingsFormURL)
}

// ApplyShippingCost mutates the draft invoice and returns it for the caller
// to persist. Applying twice updates the existing shipping tax line rather
// than duplicating it.
func (a *Applier) ApplyShippingCost(settings Settings, draft *SalesInvoice, shippingTotal decimal.Decimal) (*SalesInvoice, error) {
	switch settings.ShipmentCostTarget {
	case TargetItemsList:
		if settings.ItemCode == "" {
			return nil, exceptions.ConfigurationError(fmt.Sprintf("The item code for Shipping and Handling has not been set. Click %s to add the item code.", a.link()))
		}
		draft.Items = append(draft.Items, InvoiceItem{
			ItemCode:      settings.ItemCode,
			Qty:           decimal.NewFromInt(1),
			Rate:          shippingTotal,
			PriceListRate: shippingTotal,
		})
		return draft, nil

	case TargetTaxesList:
		if settings.ShippingDescription == "" || settings.ShippingAccount == "" {
			return nil, exceptions.ConfigurationError(fmt.Sprintf("The account head and/or description for the Shipping Charges has not been set. Click %s to add them.", a.link()))
		}
		for i := range draft.Taxes {
			if draft.Taxes[i].AccountHead == settings.ShippingAccount {
				draft.Taxes[i].TaxAmount = shippingTotal
				return draft, nil
			}
		}
		draft.Taxes = append(draft.Taxes, TaxCharge{
			ChargeType:  ChargeTypeActual,
			Description: settings.ShippingDescription,
			AccountHead: settings.ShippingAccount,
			Rate:        decimal.Zero,
			TaxAmount:   shippingTotal,
		})
		return draft, nil

	default:
		return nil, exceptions.ConfigurationError(fmt.Sprintf("The location for Sales Invoice Shipping Cost has not been set. Click %s to change the location.", a.link()))
	}
}

// CheckSettingsIfComplete validates that the configured target has its
// required fields set and answers "Complete" when it does.
func (a *Applier) CheckSettingsIfComplete(settings Settings) (string, error) {
	switch settings.ShipmentCostTarget {
	case TargetItemsList:
		if settings.ItemCode == "" {
			return "", exceptions.ConfigurationError(fmt.Sprintf("The item code for Shipping and Handling has not been set. Click %s to add the item code.", a.link()))
		}
		return "Complete", nil
	case TargetTaxesList:
		if settings.ShippingDescription == "" || settings.ShippingAccount == "" {
			return "", exceptions.ConfigurationError(fmt.Sprintf("The account head and/or description for the Shipping Charges has not been set. Click %s to add them.", a.link()))
		}
		return "Complete", nil
	default:
		return "", exceptions.ConfigurationError(fmt.Sprintf("The location for Sales Invoice Shipping Cost has not been set. Click %s to change the location.", a.link()))
	}
}
