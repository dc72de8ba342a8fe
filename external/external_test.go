package external

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	httpclient "shippinghub/internal/http"
	"shippinghub/internal/schema"
)

// shared fixtures for the provider client tests

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func rateRequestFixture() *schema.RateRequest {
	return &schema.RateRequest{
		DeliveryAddress: schema.PartyAddress{
			AddressLine1: "123 Haight St",
			City:         "San Francisco",
			State:        "CA",
			Pincode:      "94117",
		},
		DeliveryContact: schema.PartyContact{FirstName: "Jane", LastName: "Doe", Phone: "415-555-0100"},
		PickupAddress: schema.PartyAddress{
			AddressLine1: "417 Montgomery St",
			City:         "San Francisco",
			State:        "CA",
			Pincode:      "94104",
		},
		PickupContact: schema.PartyContact{FirstName: "Acme", LastName: "Warehouse"},
		Parcels:       []schema.ParcelSpec{{Length: 30, Width: 20, Height: 10, Weight: 2.5, Count: 2}},
	}
}

func settingsFixture(baseURL string) schema.ProviderSettings {
	return schema.ProviderSettings{
		Enabled:     true,
		APIKey:      "EZTK-test",
		LabelFormat: schema.LabelPDF,
		LabelSize:   "4X6",
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
	}
}

// recordingSink captures what the clients push to the alert side channel.
type recordingSink struct {
	mu       sync.Mutex
	failures []string
	warnings []string
}

func (s *recordingSink) Failure(operationLabel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, operationLabel)
}

func (s *recordingSink) Warn(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, message)
}

// nopCache satisfies the cache repository without ever hitting redis.
type nopCache struct{}

func (nopCache) Get(namespace, key string) ([]byte, bool) { return nil, false }

func (nopCache) AddToChannel(namespace, key string, value []byte, d time.Duration) {}

func (nopCache) Set(watchKey string) error { return nil }

func newTestClient(timeout time.Duration) *httpclient.HttpClient {
	return httpclient.CreateHttpClientInstance(nopCache{}, httpclient.WithCtxTimeout(timeout))
}
