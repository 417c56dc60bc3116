package datapoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtremeTypeUnit(t *testing.T) {
	cases := map[ExtremeType]ExtremeUnit{
		HighestMaxTemp:  UnitCelsius,
		LowestMinTemp:   UnitCelsius,
		LowestMaxTemp:   UnitCelsius,
		HighestMinTemp:  UnitCelsius,
		HighestRainfall: UnitMillimetre,
		HighestHoursSun: UnitHours,
	}
	for typ, want := range cases {
		u, err := typ.Unit()
		require.NoError(t, err, typ)
		assert.Equal(t, want, u)
	}

	t.Run("unregistered type", func(t *testing.T) {
		_, err := ExtremeType("HWIND").Unit()
		var unsupported *UnsupportedUnitError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, ExtremeType("HWIND"), unsupported.Type)
	})
}

func TestDecodeExtreme(t *testing.T) {
	t.Run("rainfall record", func(t *testing.T) {
		m := payload(t, `{"locId": "3134", "locationName": "GLEN ETIVE", "type": "HRAIN", "uom": "mm", "$": "40.2"}`)
		e, err := DecodeExtreme(m)
		require.NoError(t, err)
		assert.Equal(t, "3134", e.LocationID)
		assert.Equal(t, "GLEN ETIVE", e.LocationName)
		assert.Equal(t, HighestRainfall, e.Type)
		assert.Equal(t, UnitMillimetre, e.Unit)
		assert.Equal(t, 40.2, e.Value)

		unit, err := e.Type.Unit()
		require.NoError(t, err)
		assert.Equal(t, e.Unit, unit)
	})

	t.Run("unknown type code", func(t *testing.T) {
		m := payload(t, `{"locId": "1", "locationName": "X", "type": "HWIND", "uom": "mm", "$": "1"}`)
		_, err := DecodeExtreme(m)
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "type", invalid.Field)
	})
}

func TestDecodeUKExtremes(t *testing.T) {
	doc := `{
		"extremeDate": "2024-03-01Z",
		"issuedAt": "2024-03-02T09:00:00Z",
		"Regions": {
			"Region": [
				{
					"id": "uk", "name": "UK",
					"Extremes": {"Extreme": [
						{"locId": "3134", "locationName": "GLEN ETIVE", "type": "HRAIN", "uom": "mm", "$": "40.2"},
						{"locId": "3797", "locationName": "MANSTON", "type": "HSUN", "uom": "hours", "$": "10.6"}
					]}
				},
				{
					"id": "os", "name": "ORKNEY & SHETLAND",
					"Extremes": {"Extreme": {"locId": "3002", "locationName": "BALTASOUND", "type": "HMAXT", "uom": "degC", "$": "9.7"}}
				}
			]
		}
	}`

	ext, err := DecodeUKExtremes(payload(t, doc))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ext.Date)
	assert.Equal(t, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), ext.IssuedAt)
	require.Len(t, ext.Regions, 2)
	assert.Equal(t, "uk", ext.Regions[0].ID)
	require.Len(t, ext.Regions[0].Extremes, 2)
	require.Len(t, ext.Regions[1].Extremes, 1)
	assert.Equal(t, HighestMaxTemp, ext.Regions[1].Extremes[0].Type)
}
