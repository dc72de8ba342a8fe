package invoice

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shippinghub/internal/exceptions"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func requireConfigurationError(t *testing.T, err error) *exceptions.ShippingError {
	t.Helper()
	require.Error(t, err)
	var shippingErr *exceptions.ShippingError
	require.True(t, errors.As(err, &shippingErr))
	assert.Equal(t, exceptions.ConfigurationFailure, shippingErr.Kind)
	return shippingErr
}

func TestApplyShippingCostToItemsList(t *testing.T) {
	applier := NewApplier("http://app.test/settings")
	settings := Settings{ShipmentCostTarget: TargetItemsList, ItemCode: "SHIP-01"}
	draft := &SalesInvoice{
		Customer: "ACME Corp",
		Items:    []InvoiceItem{{ItemCode: "WIDGET", Qty: decimal.NewFromInt(4), Rate: dec(t, "9.99")}},
	}

	updated, err := applier.ApplyShippingCost(settings, draft, dec(t, "12.50"))
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)

	shippingLine := updated.Items[1]
	assert.Equal(t, "SHIP-01", shippingLine.ItemCode)
	assert.True(t, shippingLine.Qty.Equal(decimal.NewFromInt(1)))
	assert.True(t, shippingLine.Rate.Equal(dec(t, "12.50")))
	assert.True(t, shippingLine.PriceListRate.Equal(dec(t, "12.50")))

	// the pre-existing line is untouched
	assert.Equal(t, "WIDGET", updated.Items[0].ItemCode)
	assert.True(t, updated.Items[0].Rate.Equal(dec(t, "9.99")))
}

func TestApplyShippingCostItemsListWithoutItemCode(t *testing.T) {
	applier := NewApplier("http://app.test/settings")
	settings := Settings{ShipmentCostTarget: TargetItemsList}

	_, err := applier.ApplyShippingCost(settings, &SalesInvoice{}, dec(t, "12.50"))
	shippingErr := requireConfigurationError(t, err)
	assert.Contains(t, shippingErr.Message, "item code for Shipping and Handling has not been set")
	assert.Contains(t, shippingErr.Message, `<a href="http://app.test/settings">`)
}

func TestApplyShippingCostToTaxesList(t *testing.T) {
	applier := NewApplier("http://app.test/settings")
	settings := Settings{
		ShipmentCostTarget:  TargetTaxesList,
		ShippingDescription: "Shipping and Handling",
		ShippingAccount:     "Freight and Forwarding Charges",
	}
	draft := &SalesInvoice{}

	updated, err := applier.ApplyShippingCost(settings, draft, dec(t, "10.00"))
	require.NoError(t, err)
	require.Len(t, updated.Taxes, 1)

	charge := updated.Taxes[0]
	assert.Equal(t, ChargeTypeActual, charge.ChargeType)
	assert.Equal(t, "Shipping and Handling", charge.Description)
	assert.Equal(t, "Freight and Forwarding Charges", charge.AccountHead)
	assert.True(t, charge.Rate.IsZero())
	assert.True(t, charge.TaxAmount.Equal(dec(t, "10.00")))
}

func TestApplyShippingCostTaxesListIsIdempotent(t *testing.T) {
	applier := NewApplier("")
	settings := Settings{
		ShipmentCostTarget:  TargetTaxesList,
		ShippingDescription: "Shipping and Handling",
		ShippingAccount:     "Freight and Forwarding Charges",
	}
	draft := &SalesInvoice{}

	updated, err := applier.ApplyShippingCost(settings, draft, dec(t, "10.00"))
	require.NoError(t, err)

	// a second apply with a corrected total updates the line in place
	updated, err = applier.ApplyShippingCost(settings, updated, dec(t, "15.00"))
	require.NoError(t, err)
	require.Len(t, updated.Taxes, 1)
	assert.True(t, updated.Taxes[0].TaxAmount.Equal(dec(t, "15.00")))
}

func TestApplyShippingCostTaxesListMissingAccountOrDescription(t *testing.T) {
	applier := NewApplier("")
	settings := Settings{ShipmentCostTarget: TargetTaxesList, ShippingAccount: "Freight and Forwarding Charges"}

	_, err := applier.ApplyShippingCost(settings, &SalesInvoice{}, dec(t, "10.00"))
	shippingErr := requireConfigurationError(t, err)
	assert.Contains(t, shippingErr.Message, "account head and/or description")
}

func TestApplyShippingCostUnsetTarget(t *testing.T) {
	applier := NewApplier("")

	_, err := applier.ApplyShippingCost(Settings{}, &SalesInvoice{}, dec(t, "10.00"))
	shippingErr := requireConfigurationError(t, err)
	assert.Contains(t, shippingErr.Message, "location for Sales Invoice Shipping Cost has not been set")
}

func TestCheckSettingsIfComplete(t *testing.T) {
	applier := NewApplier("")

	status, err := applier.CheckSettingsIfComplete(Settings{ShipmentCostTarget: TargetItemsList, ItemCode: "SHIP-01"})
	require.NoError(t, err)
	assert.Equal(t, "Complete", status)

	status, err = applier.CheckSettingsIfComplete(Settings{
		ShipmentCostTarget:  TargetTaxesList,
		ShippingDescription: "Shipping and Handling",
		ShippingAccount:     "Freight and Forwarding Charges",
	})
	require.NoError(t, err)
	assert.Equal(t, "Complete", status)

	_, err = applier.CheckSettingsIfComplete(Settings{ShipmentCostTarget: TargetItemsList})
	requireConfigurationError(t, err)

	_, err = applier.CheckSettingsIfComplete(Settings{ShipmentCostTarget: TargetTaxesList})
	requireConfigurationError(t, err)

	_, err = applier.CheckSettingsIfComplete(Settings{})
	requireConfigurationError(t, err)
}
