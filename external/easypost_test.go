package external

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shippinghub/internal/schema"
)

func TestGenerateRateOptions(t *testing.T) {
	responseJson := []byte(`{
		"id": "shp_batch1",
		"rates": [
			{"id": "rate_1", "carrier": "easypost", "service": "Priority", "rate": "7.33"},
			{"id": "rate_2", "carrier": "usps", "service": "First", "rate": "5.00"}
		]
	}`)
	var shipmentData EasypostShipmentResponse
	require.NoError(t, json.Unmarshal(responseJson, &shipmentData))

	rateOptions, err := shipmentData.GenerateRateOptions(2)
	require.NoError(t, err)
	require.Len(t, rateOptions, 2)

	for _, option := range rateOptions {
		assert.Equal(t, "EasyPost", option.ServiceProvider)
		assert.Equal(t, "shp_batch1", option.ShipmentID)
	}
	assert.Equal(t, "EasyPost", rateOptions[0].Carrier)
	assert.Equal(t, "Priority", rateOptions[0].ServiceName)
	assert.Equal(t, "rate_1", rateOptions[0].ServiceID)
	assert.True(t, rateOptions[0].TotalPrice.Equal(mustDecimal(t, "14.66")))
	assert.Equal(t, "USPS", rateOptions[1].Carrier)
	assert.True(t, rateOptions[1].TotalPrice.Equal(mustDecimal(t, "10.00")))
}

func TestGenerateRateOptionsRejectsUnparseableRate(t *testing.T) {
	shipmentData := EasypostShipmentResponse{
		ID:    "shp_bad",
		Rates: []EasypostRate{{ID: "rate_1", Carrier: "usps", Service: "First", Rate: "not-a-number"}},
	}

	_, err := shipmentData.GenerateRateOptions(1)
	assert.Error(t, err)
}

func TestBuildShipmentPayload(t *testing.T) {
	req := rateRequestFixture()

	payload := BuildShipmentPayload(req)

	assert.Equal(t, "Jane Doe", payload.ToAddress.Name)
	assert.Equal(t, "US", payload.ToAddress.Country)
	assert.Equal(t, "US", payload.FromAddress.Country)
	assert.Equal(t, "94117", payload.ToAddress.Zip)
	assert.InDelta(t, 30/2.54, payload.Parcel.Length, 1e-4)
	assert.InDelta(t, 2.5*2.20462, payload.Parcel.Weight, 1e-4)
}

func TestBuildShipmentPayloadEmailRouting(t *testing.T) {
	req := rateRequestFixture()
	req.DeliveryContact.Email = "jane@example.com"
	req.PickupContact.Email = ""

	payload := BuildShipmentPayload(req)
	assert.Equal(t, "jane@example.com", payload.ToAddress.Email)
	assert.Empty(t, payload.FromAddress.Email)

	// a pickup-side email lands on the destination address and wins
	req.PickupContact.Email = "warehouse@example.com"
	payload = BuildShipmentPayload(req)
	assert.Equal(t, "warehouse@example.com", payload.ToAddress.Email)
	assert.Empty(t, payload.FromAddress.Email)
}

func TestBuildLabelOptions(t *testing.T) {
	settings := schema.ProviderSettings{LabelSize: "4X6", LabelFormat: schema.LabelPDF}
	options := BuildLabelOptions(settings)
	assert.Equal(t, map[string]string{"label_size": "4X6", "label_format": "pdf"}, options)

	// pdf labels are only supported at 4X6
	settings = schema.ProviderSettings{LabelSize: "4X8", LabelFormat: schema.LabelPDF}
	options = BuildLabelOptions(settings)
	assert.Equal(t, map[string]string{"label_size": "4X8"}, options)

	settings = schema.ProviderSettings{LabelSize: "4X6", LabelFormat: schema.LabelZPL}
	options = BuildLabelOptions(settings)
	assert.Equal(t, map[string]string{"label_size": "4X6"}, options)
}

func TestLabelURLForFormat(t *testing.T) {
	label := EasypostPostageLabel{
		LabelURL:     "https://labels.test/label.png",
		LabelPdfURL:  "https://labels.test/label.pdf",
		LabelZplURL:  "https://labels.test/label.zpl",
		LabelEpl2URL: "https://labels.test/label.epl2",
	}

	assert.Equal(t, label.LabelPdfURL, label.LabelURLForFormat(schema.LabelPDF))
	assert.Equal(t, label.LabelZplURL, label.LabelURLForFormat(schema.LabelZPL))
	assert.Equal(t, label.LabelEpl2URL, label.LabelURLForFormat(schema.LabelEPL2))
	// png reads the bare label_url key
	assert.Equal(t, label.LabelURL, label.LabelURLForFormat(schema.LabelPNG))
}
