package datapoint

// WindDirection is the 16-point compass direction keyed by its abbreviation.
type WindDirection string

const (
	North          WindDirection = "N"
	East           WindDirection = "E"
	South          WindDirection = "S"
	West           WindDirection = "W"
	NorthEast      WindDirection = "NE"
	SouthEast      WindDirection = "SE"
	SouthWest      WindDirection = "SW"
	NorthWest      WindDirection = "NW"
	NorthNorthEast WindDirection = "NNE"
	EastNorthEast  WindDirection = "ENE"
	EastSouthEast  WindDirection = "ESE"
	SouthSouthEast WindDirection = "SSE"
	SouthSouthWest WindDirection = "SSW"
	WestSouthWest  WindDirection = "WSW"
	WestNorthWest  WindDirection = "WNW"
	NorthNorthWest WindDirection = "NNW"
)

// ParseWindDirection validates a compass abbreviation.
func ParseWindDirection(s string) (WindDirection, error) {
	switch WindDirection(s) {
	case North, East, South, West,
		NorthEast, SouthEast, SouthWest, NorthWest,
		NorthNorthEast, EastNorthEast, EastSouthEast, SouthSouthEast,
		SouthSouthWest, WestSouthWest, WestNorthWest, NorthNorthWest:
		return WindDirection(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "wind direction"}
	}
}

func windDirectionField(m Payload, key string) (WindDirection, error) {
	s, err := stringField(m, key)
	if err != nil {
		return "", err
	}
	d, err := ParseWindDirection(s)
	if err != nil {
		return "", &InvalidValueError{Field: key, Value: s, Want: "wind direction"}
	}
	return d, nil
}

// Period tags a daily forecast record as the day or night half of the cycle.
type Period string

const (
	PeriodDay   Period = "Day"
	PeriodNight Period = "Night"
)

// ParsePeriod validates a day/night tag.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodNight:
		return Period(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "period"}
	}
}

// PressureTendency is the direction of barometric change in an observation.
type PressureTendency string

const (
	PressureRising  PressureTendency = "R"
	PressureFalling PressureTendency = "F"
	PressureSteady  PressureTendency = "S"
)

// ParsePressureTendency validates a pressure tendency code.
func ParsePressureTendency(s string) (PressureTendency, error) {
	switch PressureTendency(s) {
	case PressureRising, PressureFalling, PressureSteady:
		return PressureTendency(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "pressure tendency"}
	}
}
