package datapoint

import "time"

// ObservationRep is one hourly station observation. Stations report an
// arbitrary subset of instruments, so every reading is independently
// optional; only the time offset is required.
type ObservationRep struct {
	Temperature      *float64
	WindDirection    *WindDirection
	WindSpeed        *float64
	WindGust         *float64
	DewPoint         *float64
	RelativeHumidity *float64
	WeatherType      *SignificantWeather
	Visibility       *float64
	Pressure         *float64
	PressureTendency *PressureTendency
	Offset           time.Duration
}

// DecodeObservationRep builds an ObservationRep from one Rep record of an
// observation feed.
func DecodeObservationRep(m Payload) (ObservationRep, error) {
	var rep ObservationRep
	var err error

	if rep.Temperature, err = optFloatField(m, "T"); err != nil {
		return ObservationRep{}, err
	}
	if _, ok := m["D"]; ok {
		d, err := windDirectionField(m, "D")
		if err != nil {
			return ObservationRep{}, err
		}
		rep.WindDirection = &d
	}
	if rep.WindSpeed, err = optFloatField(m, "S"); err != nil {
		return ObservationRep{}, err
	}
	if rep.WindGust, err = optFloatField(m, "G"); err != nil {
		return ObservationRep{}, err
	}
	if rep.DewPoint, err = optFloatField(m, "Dp"); err != nil {
		return ObservationRep{}, err
	}
	if rep.RelativeHumidity, err = optFloatField(m, "H"); err != nil {
		return ObservationRep{}, err
	}
	if _, ok := m["W"]; ok {
		if rep.WeatherType, err = weatherField(m, "W"); err != nil {
			return ObservationRep{}, err
		}
	}
	if rep.Visibility, err = optFloatField(m, "V"); err != nil {
		return ObservationRep{}, err
	}
	if rep.Pressure, err = optFloatField(m, "P"); err != nil {
		return ObservationRep{}, err
	}
	if _, ok := m["Pt"]; ok {
		s, err := stringField(m, "Pt")
		if err != nil {
			return ObservationRep{}, err
		}
		pt, err := ParsePressureTendency(s)
		if err != nil {
			return ObservationRep{}, &InvalidValueError{Field: "Pt", Value: s, Want: "pressure tendency"}
		}
		rep.PressureTendency = &pt
	}
	if rep.Offset, err = minutesField(m, "$"); err != nil {
		return ObservationRep{}, err
	}
	return rep, nil
}

// ObservationPeriod is one calendar date of observations.
type ObservationPeriod struct {
	Type string
	Date time.Time
	Reps []ObservationRep
}

// DecodeObservationPeriod builds an ObservationPeriod from one Period record.
func DecodeObservationPeriod(m Payload) (ObservationPeriod, error) {
	typ, err := stringField(m, "type")
	if err != nil {
		return ObservationPeriod{}, err
	}
	date, err := dateField(m, "value")
	if err != nil {
		return ObservationPeriod{}, err
	}
	reps, err := decodeSequence(m, "Rep", DecodeObservationRep)
	if err != nil {
		return ObservationPeriod{}, err
	}
	return ObservationPeriod{Type: typ, Date: date, Reps: reps}, nil
}

// Observation is the decoded content of an observation feed's DV Location
// element.
type Observation struct {
	Location ForecastLocation
	Periods  []ObservationPeriod
}

// DecodeObservation builds an Observation from the Location element of an
// observation response.
func DecodeObservation(m Payload) (Observation, error) {
	location, err := DecodeForecastLocation(m)
	if err != nil {
		return Observation{}, err
	}
	periods, err := decodeSequence(m, "Period", DecodeObservationPeriod)
	if err != nil {
		return Observation{}, err
	}
	return Observation{Location: location, Periods: periods}, nil
}
