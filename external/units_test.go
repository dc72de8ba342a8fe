package external

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shippinghub/internal/schema"
)

func TestConvertParcel(t *testing.T) {
	parcel := schema.ParcelSpec{Length: 2.54, Width: 2.54, Height: 2.54, Weight: 1, Count: 3}

	imperial := ConvertParcel(parcel)

	assert.InDelta(t, 1.0, imperial.Length, 1e-4)
	assert.InDelta(t, 1.0, imperial.Width, 1e-4)
	assert.InDelta(t, 1.0, imperial.Height, 1e-4)
	assert.InDelta(t, 2.20462, imperial.Weight, 1e-4)
	assert.Equal(t, 3, imperial.Count)
}

func TestConvertParcelKeepsMetricInputUntouched(t *testing.T) {
	parcel := schema.ParcelSpec{Length: 30, Width: 20, Height: 10, Weight: 2.5, Count: 1}

	imperial := ConvertParcel(parcel)

	assert.InDelta(t, 30/2.54, imperial.Length, 1e-4)
	assert.InDelta(t, 2.5*2.20462, imperial.Weight, 1e-4)
	assert.Equal(t, 30.0, parcel.Length)
	assert.Equal(t, 2.5, parcel.Weight)
}
