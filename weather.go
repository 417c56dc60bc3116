package datapoint

import "strconv"

// SignificantWeather is the integer-coded weather phenomenon reported in
// forecast and observation records. The code space is 0-30 with code 4
// unassigned.
type SignificantWeather int

const (
	WeatherClearNight           SignificantWeather = 0
	WeatherSunnyDay             SignificantWeather = 1
	WeatherPartlyCloudyNight    SignificantWeather = 2
	WeatherPartlyCloudyDay      SignificantWeather = 3
	WeatherMist                 SignificantWeather = 5
	WeatherFog                  SignificantWeather = 6
	WeatherCloudy               SignificantWeather = 7
	WeatherOvercast             SignificantWeather = 8
	WeatherLightRainShowerNight SignificantWeather = 9
	WeatherLightRainShowerDay   SignificantWeather = 10
	WeatherDrizzle              SignificantWeather = 11
	WeatherLightRain            SignificantWeather = 12
	WeatherHeavyRainShowerNight SignificantWeather = 13
	WeatherHeavyRainShowerDay   SignificantWeather = 14
	WeatherHeavyRain            SignificantWeather = 15
	WeatherSleetShowerNight     SignificantWeather = 16
	WeatherSleetShowerDay       SignificantWeather = 17
	WeatherSleet                SignificantWeather = 18
	WeatherHailShowerNight      SignificantWeather = 19
	WeatherHailShowerDay        SignificantWeather = 20
	WeatherHail                 SignificantWeather = 21
	WeatherLightSnowShowerNight SignificantWeather = 22
	WeatherLightSnowShowerDay   SignificantWeather = 23
	WeatherLightSnow            SignificantWeather = 24
	WeatherHeavySnowShowerNight SignificantWeather = 25
	WeatherHeavySnowShowerDay   SignificantWeather = 26
	WeatherHeavySnow            SignificantWeather = 27
	WeatherThunderShowerNight   SignificantWeather = 28
	WeatherThunderShowerDay     SignificantWeather = 29
	WeatherThunder              SignificantWeather = 30
)

// ParseSignificantWeather decodes the wire form of a weather code. The API
// returns an integer in string format, or "NA" when no code applies; "NA"
// decodes to nil rather than an error.
func ParseSignificantWeather(s string) (*SignificantWeather, error) {
	if s == "NA" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !SignificantWeather(n).known() {
		return nil, &InvalidValueError{Value: s, Want: "significant weather code"}
	}
	w := SignificantWeather(n)
	return &w, nil
}

// weatherField decodes the weather code under the given key, nil for "NA".
func weatherField(m Payload, key string) (*SignificantWeather, error) {
	s, err := stringField(m, key)
	if err != nil {
		return nil, err
	}
	w, err := ParseSignificantWeather(s)
	if err != nil {
		return nil, &InvalidValueError{Field: key, Value: s, Want: "significant weather code"}
	}
	return w, nil
}

// Wire returns the value as transmitted by the API.
func (w SignificantWeather) Wire() string {
	return strconv.Itoa(int(w))
}

func (w SignificantWeather) known() bool {
	return w >= WeatherClearNight && w <= WeatherThunder && w != 4
}

// IsRain reports whether this is a rain weather type. Thunder showers count
// as rain; dry thunder does not.
func (w SignificantWeather) IsRain() bool {
	switch w {
	case WeatherLightRainShowerNight, WeatherLightRainShowerDay,
		WeatherDrizzle, WeatherLightRain,
		WeatherHeavyRainShowerNight, WeatherHeavyRainShowerDay, WeatherHeavyRain,
		WeatherThunderShowerNight, WeatherThunderShowerDay:
		return true
	}
	return false
}

// IsSleet reports whether this is a sleet weather type.
func (w SignificantWeather) IsSleet() bool {
	switch w {
	case WeatherSleetShowerNight, WeatherSleetShowerDay, WeatherSleet:
		return true
	}
	return false
}

// IsHail reports whether this is a hail weather type.
func (w SignificantWeather) IsHail() bool {
	switch w {
	case WeatherHailShowerNight, WeatherHailShowerDay, WeatherHail:
		return true
	}
	return false
}

// IsSnow reports whether this is a snow weather type.
func (w SignificantWeather) IsSnow() bool {
	switch w {
	case WeatherLightSnowShowerNight, WeatherLightSnowShowerDay, WeatherLightSnow,
		WeatherHeavySnowShowerNight, WeatherHeavySnowShowerDay, WeatherHeavySnow:
		return true
	}
	return false
}

// IsThunder reports whether this is a thunder weather type.
func (w SignificantWeather) IsThunder() bool {
	switch w {
	case WeatherThunderShowerNight, WeatherThunderShowerDay, WeatherThunder:
		return true
	}
	return false
}

// IsPrecipitation reports whether this is any precipitation weather type.
func (w SignificantWeather) IsPrecipitation() bool {
	return w.IsRain() || w.IsSleet() || w.IsHail() || w.IsSnow()
}

// IsClear reports whether this is a clear weather type.
func (w SignificantWeather) IsClear() bool {
	return w == WeatherClearNight || w == WeatherSunnyDay
}
