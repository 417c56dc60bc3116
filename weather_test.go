package datapoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignificantWeather(t *testing.T) {
	t.Run("numeric code", func(t *testing.T) {
		w, err := ParseSignificantWeather("7")
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, WeatherCloudy, *w)
	})

	t.Run("NA decodes to absent", func(t *testing.T) {
		w, err := ParseSignificantWeather("NA")
		require.NoError(t, err)
		assert.Nil(t, w)
	})

	t.Run("unassigned code 4", func(t *testing.T) {
		_, err := ParseSignificantWeather("4")
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := ParseSignificantWeather("31")
		require.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseSignificantWeather("cloudy")
		require.Error(t, err)
	})
}

func TestSignificantWeatherWire(t *testing.T) {
	for _, code := range []string{"0", "7", "30"} {
		w, err := ParseSignificantWeather(code)
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, code, w.Wire())
	}
}

func TestSignificantWeatherCategories(t *testing.T) {
	cases := []struct {
		name    string
		w       SignificantWeather
		rain    bool
		sleet   bool
		hail    bool
		snow    bool
		thunder bool
		clear   bool
	}{
		{name: "clear night", w: WeatherClearNight, clear: true},
		{name: "sunny day", w: WeatherSunnyDay, clear: true},
		{name: "cloudy", w: WeatherCloudy},
		{name: "drizzle", w: WeatherDrizzle, rain: true},
		{name: "heavy rain", w: WeatherHeavyRain, rain: true},
		{name: "sleet shower day", w: WeatherSleetShowerDay, sleet: true},
		{name: "hail", w: WeatherHail, hail: true},
		{name: "heavy snow", w: WeatherHeavySnow, snow: true},
		{name: "thunder shower day", w: WeatherThunderShowerDay, rain: true, thunder: true},
		{name: "thunder", w: WeatherThunder, thunder: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.rain, tc.w.IsRain())
			assert.Equal(t, tc.sleet, tc.w.IsSleet())
			assert.Equal(t, tc.hail, tc.w.IsHail())
			assert.Equal(t, tc.snow, tc.w.IsSnow())
			assert.Equal(t, tc.thunder, tc.w.IsThunder())
			assert.Equal(t, tc.clear, tc.w.IsClear())
			wantPrecip := tc.rain || tc.sleet || tc.hail || tc.snow
			assert.Equal(t, wantPrecip, tc.w.IsPrecipitation())
		})
	}
}
