package datapoint

import (
	"time"
)

// DailyForecastRep is one half of a daily forecast day-cycle. A record is
// either the day or the night half and carries only that half's key set; the
// day/night aliased fields read whichever key is present.
type DailyForecastRep struct {
	Visibility               Visibility
	WindDirection            WindDirection
	WindSpeed                float64
	WindGust                 float64
	WeatherType              *SignificantWeather
	MaxUVIndex               *int
	Temperature              float64
	FeelsLikeTemperature     float64
	PrecipitationProbability float64
	RelativeHumidity         float64
	Period                   Period
}

// HasUVIndex reports whether a UV index was transmitted. Night records omit it.
func (r DailyForecastRep) HasUVIndex() bool { return r.MaxUVIndex != nil }

// WeatherTypeUnknown reports whether the weather code was "NA".
func (r DailyForecastRep) WeatherTypeUnknown() bool { return r.WeatherType == nil }

// DecodeDailyForecastRep builds a DailyForecastRep from one Rep record of a
// daily-resolution forecast.
func DecodeDailyForecastRep(m Payload) (DailyForecastRep, error) {
	feelsLike, err := floatEither(m, "FDm", "FNm")
	if err != nil {
		return DailyForecastRep{}, err
	}
	temperature, err := floatEither(m, "Dm", "Nm")
	if err != nil {
		return DailyForecastRep{}, err
	}
	windDirection, err := windDirectionField(m, "D")
	if err != nil {
		return DailyForecastRep{}, err
	}
	gust, err := floatEither(m, "Gn", "Gm")
	if err != nil {
		return DailyForecastRep{}, err
	}
	humidity, err := floatEither(m, "Hn", "Hm")
	if err != nil {
		return DailyForecastRep{}, err
	}
	visibility, err := visibilityField(m, "V")
	if err != nil {
		return DailyForecastRep{}, err
	}
	windSpeed, err := floatField(m, "S")
	if err != nil {
		return DailyForecastRep{}, err
	}
	uv, err := optIntField(m, "U")
	if err != nil {
		return DailyForecastRep{}, err
	}
	weather, err := weatherField(m, "W")
	if err != nil {
		return DailyForecastRep{}, err
	}
	precipProb, err := floatEither(m, "PPd", "PPn")
	if err != nil {
		return DailyForecastRep{}, err
	}
	periodStr, err := stringField(m, "$")
	if err != nil {
		return DailyForecastRep{}, err
	}
	period, err := ParsePeriod(periodStr)
	if err != nil {
		return DailyForecastRep{}, &InvalidValueError{Field: "$", Value: periodStr, Want: "period"}
	}
	return DailyForecastRep{
		Visibility:               visibility,
		WindDirection:            windDirection,
		WindSpeed:                windSpeed,
		WindGust:                 gust,
		WeatherType:              weather,
		MaxUVIndex:               uv,
		Temperature:              temperature,
		FeelsLikeTemperature:     feelsLike,
		PrecipitationProbability: precipProb,
		RelativeHumidity:         humidity,
		Period:                   period,
	}, nil
}

// ThreeHourlyForecastRep is one three-hour forecast sample. Offset is the
// sample time as a duration past midnight of the containing period's date.
type ThreeHourlyForecastRep struct {
	Visibility               Visibility
	WindDirection            WindDirection
	WindSpeed                float64
	WindGust                 float64
	WeatherType              *SignificantWeather
	MaxUVIndex               *int
	Temperature              float64
	FeelsLikeTemperature     float64
	PrecipitationProbability float64
	RelativeHumidity         float64
	Offset                   time.Duration
}

// HasUVIndex reports whether a UV index was transmitted. Night-time samples
// omit it.
func (r ThreeHourlyForecastRep) HasUVIndex() bool { return r.MaxUVIndex != nil }

// WeatherTypeUnknown reports whether the weather code was "NA".
func (r ThreeHourlyForecastRep) WeatherTypeUnknown() bool { return r.WeatherType == nil }

// DecodeThreeHourlyForecastRep builds a ThreeHourlyForecastRep from one Rep
// record of a three-hourly forecast.
func DecodeThreeHourlyForecastRep(m Payload) (ThreeHourlyForecastRep, error) {
	feelsLike, err := floatField(m, "F")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	gust, err := floatField(m, "G")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	humidity, err := floatField(m, "H")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	temperature, err := floatField(m, "T")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	visibility, err := visibilityField(m, "V")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	windDirection, err := windDirectionField(m, "D")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	windSpeed, err := floatField(m, "S")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	uv, err := optIntField(m, "U")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	weather, err := weatherField(m, "W")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	precipProb, err := floatField(m, "Pp")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	offset, err := minutesField(m, "$")
	if err != nil {
		return ThreeHourlyForecastRep{}, err
	}
	return ThreeHourlyForecastRep{
		Visibility:               visibility,
		WindDirection:            windDirection,
		WindSpeed:                windSpeed,
		WindGust:                 gust,
		WeatherType:              weather,
		MaxUVIndex:               uv,
		Temperature:              temperature,
		FeelsLikeTemperature:     feelsLike,
		PrecipitationProbability: precipProb,
		RelativeHumidity:         humidity,
		Offset:                   offset,
	}, nil
}

// ForecastPeriod is one calendar date of forecast samples. Exactly one of
// the two rep slices is populated, selected by the Resolution the containing
// forecast was decoded under.
type ForecastPeriod struct {
	Type            string
	Date            time.Time
	DailyReps       []DailyForecastRep
	ThreeHourlyReps []ThreeHourlyForecastRep
}

// DecodeForecastPeriod builds a ForecastPeriod from one Period record,
// dispatching the Rep decoder on the resolution.
func DecodeForecastPeriod(m Payload, res Resolution) (ForecastPeriod, error) {
	typ, err := stringField(m, "type")
	if err != nil {
		return ForecastPeriod{}, err
	}
	date, err := dateField(m, "value")
	if err != nil {
		return ForecastPeriod{}, err
	}
	p := ForecastPeriod{Type: typ, Date: date}

	switch res {
	case ResolutionDaily:
		p.DailyReps, err = decodeSequence(m, "Rep", DecodeDailyForecastRep)
	case ResolutionThreeHourly:
		p.ThreeHourlyReps, err = decodeSequence(m, "Rep", DecodeThreeHourlyForecastRep)
	default:
		return ForecastPeriod{}, &UnknownResolutionError{Value: res}
	}
	if err != nil {
		return ForecastPeriod{}, err
	}
	return p, nil
}

// Forecast is the decoded content of a forecast feed's DV Location element.
type Forecast struct {
	Location ForecastLocation
	Periods  []ForecastPeriod
}

// DecodeForecast builds a Forecast from the Location element of a forecast
// response.
func DecodeForecast(m Payload, res Resolution) (Forecast, error) {
	location, err := DecodeForecastLocation(m)
	if err != nil {
		return Forecast{}, err
	}
	periods, err := decodeSequence(m, "Period", func(p Payload) (ForecastPeriod, error) {
		return DecodeForecastPeriod(p, res)
	})
	if err != nil {
		return Forecast{}, err
	}
	return Forecast{Location: location, Periods: periods}, nil
}
