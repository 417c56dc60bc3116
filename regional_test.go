package datapoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRegionalForecast(t *testing.T) {
	doc := `{
		"createdOn": "2024-03-01T05:03:25",
		"issuedAt": "2024-03-01T05:00:00",
		"regionId": "se",
		"FcstPeriods": {
			"Period": [
				{
					"id": "day1to2",
					"Paragraph": [
						{"title": "Headline:", "$": "Rain clearing, then sunny spells."},
						{"title": "Today:", "$": "A band of rain will clear eastwards through the morning."}
					]
				},
				{
					"id": "day3to5",
					"Paragraph": {"title": "Outlook:", "$": "Becoming more settled."}
				}
			]
		}
	}`

	fc, err := DecodeRegionalForecast(payload(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "se", fc.RegionID)
	assert.Equal(t, time.Date(2024, 3, 1, 5, 3, 25, 0, time.UTC), fc.CreatedOn)
	assert.Equal(t, time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC), fc.IssuedAt)
	require.Len(t, fc.Periods, 2)

	assert.Equal(t, DayOneToTwo, fc.Periods[0].ID)
	require.Len(t, fc.Periods[0].Paragraphs, 2)
	assert.Equal(t, "Headline:", fc.Periods[0].Paragraphs[0].Title)

	// A single bare Paragraph decodes the same as a one-element list.
	assert.Equal(t, DayThreeToFive, fc.Periods[1].ID)
	require.Len(t, fc.Periods[1].Paragraphs, 1)
	assert.Equal(t, "Becoming more settled.", fc.Periods[1].Paragraphs[0].Text)
}

func TestParseRegionalForecastPeriodID(t *testing.T) {
	for _, id := range []string{"day1to2", "day3to5", "day6to15", "day16to30"} {
		got, err := ParseRegionalForecastPeriodID(id)
		require.NoError(t, err)
		assert.Equal(t, RegionalForecastPeriodID(id), got)
	}

	_, err := ParseRegionalForecastPeriodID("day31to60")
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
}

func TestDecodeSiteLists(t *testing.T) {
	t.Run("regional site entry", func(t *testing.T) {
		loc, err := DecodeRegionalForecastLocation(payload(t, `{"@id": "515", "@name": "se"}`))
		require.NoError(t, err)
		assert.Equal(t, 515, loc.ID)
		assert.Equal(t, "se", loc.Name)
	})

	t.Run("mountain area entry keeps string IDs", func(t *testing.T) {
		loc, err := DecodeMountainAreaLocation(payload(t, `{"@id": "50", "@name": "Peak District"}`))
		require.NoError(t, err)
		assert.Equal(t, "50", loc.ID)
		assert.Equal(t, "Peak District", loc.Name)
	})

	t.Run("forecast site entry", func(t *testing.T) {
		site, err := DecodeSiteInfo(payload(t, `{"id": "3840", "latitude": "50.7366", "longitude": "-3.40458", "name": "DUNKESWELL AERODROME"}`))
		require.NoError(t, err)
		assert.Equal(t, 3840, site.ID)
		assert.Equal(t, 50.7366, site.Latitude)
		lat, lon := site.Coordinates()
		assert.Equal(t, site.Latitude, lat)
		assert.Equal(t, site.Longitude, lon)
	})
}
