package datapoint

import "time"

// ExtremeUnit is the unit of measurement of an extreme-weather record.
type ExtremeUnit string

const (
	UnitCelsius    ExtremeUnit = "degC"
	UnitMillimetre ExtremeUnit = "mm"
	UnitHours      ExtremeUnit = "hours"
)

// ExtremeType identifies which extreme a record reports.
type ExtremeType string

const (
	HighestMaxTemp  ExtremeType = "HMAXT"
	LowestMinTemp   ExtremeType = "LMINT"
	LowestMaxTemp   ExtremeType = "LMAXT"
	HighestMinTemp  ExtremeType = "HMINT"
	HighestRainfall ExtremeType = "HRAIN"
	HighestHoursSun ExtremeType = "HSUN"
)

// extremeUnits fixes the unit of measurement per extreme type. The payload
// repeats the unit, but the association itself is static.
var extremeUnits = map[ExtremeType]ExtremeUnit{
	HighestMaxTemp:  UnitCelsius,
	LowestMinTemp:   UnitCelsius,
	LowestMaxTemp:   UnitCelsius,
	HighestMinTemp:  UnitCelsius,
	HighestRainfall: UnitMillimetre,
	HighestHoursSun: UnitHours,
}

// Unit returns the unit of measurement associated with this extreme type.
func (t ExtremeType) Unit() (ExtremeUnit, error) {
	u, ok := extremeUnits[t]
	if !ok {
		return "", &UnsupportedUnitError{Type: t}
	}
	return u, nil
}

// ParseExtremeType validates an extreme type code.
func ParseExtremeType(s string) (ExtremeType, error) {
	switch ExtremeType(s) {
	case HighestMaxTemp, LowestMinTemp, LowestMaxTemp,
		HighestMinTemp, HighestRainfall, HighestHoursSun:
		return ExtremeType(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "extreme type"}
	}
}

// ParseExtremeUnit validates a unit-of-measure code.
func ParseExtremeUnit(s string) (ExtremeUnit, error) {
	switch ExtremeUnit(s) {
	case UnitCelsius, UnitMillimetre, UnitHours:
		return ExtremeUnit(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "extreme unit"}
	}
}

// Extreme is one extreme-weather record for a single station.
type Extreme struct {
	LocationID   string
	LocationName string
	Type         ExtremeType
	Unit         ExtremeUnit
	Value        float64
}

// DecodeExtreme builds an Extreme from one Extreme record.
func DecodeExtreme(m Payload) (Extreme, error) {
	locID, err := stringField(m, "locId")
	if err != nil {
		return Extreme{}, err
	}
	locName, err := stringField(m, "locationName")
	if err != nil {
		return Extreme{}, err
	}
	typStr, err := stringField(m, "type")
	if err != nil {
		return Extreme{}, err
	}
	typ, err := ParseExtremeType(typStr)
	if err != nil {
		return Extreme{}, &InvalidValueError{Field: "type", Value: typStr, Want: "extreme type"}
	}
	unitStr, err := stringField(m, "uom")
	if err != nil {
		return Extreme{}, err
	}
	unit, err := ParseExtremeUnit(unitStr)
	if err != nil {
		return Extreme{}, &InvalidValueError{Field: "uom", Value: unitStr, Want: "extreme unit"}
	}
	value, err := floatField(m, "$")
	if err != nil {
		return Extreme{}, err
	}
	return Extreme{
		LocationID:   locID,
		LocationName: locName,
		Type:         typ,
		Unit:         unit,
		Value:        value,
	}, nil
}

// ExtremeRegion holds the extremes recorded across one UK region.
type ExtremeRegion struct {
	ID       string
	Name     string
	Extremes []Extreme
}

// DecodeExtremeRegion builds an ExtremeRegion from one Region record.
func DecodeExtremeRegion(m Payload) (ExtremeRegion, error) {
	id, err := stringField(m, "id")
	if err != nil {
		return ExtremeRegion{}, err
	}
	name, err := stringField(m, "name")
	if err != nil {
		return ExtremeRegion{}, err
	}
	wrapper, err := objectField(m, "Extremes")
	if err != nil {
		return ExtremeRegion{}, err
	}
	extremes, err := decodeSequence(wrapper, "Extreme", DecodeExtreme)
	if err != nil {
		return ExtremeRegion{}, err
	}
	return ExtremeRegion{ID: id, Name: name, Extremes: extremes}, nil
}

// UKExtremes is the latest national extremes bulletin.
type UKExtremes struct {
	Date     time.Time
	IssuedAt time.Time
	Regions  []ExtremeRegion
}

// DecodeUKExtremes builds a UKExtremes from the UkExtremes element of the
// response.
func DecodeUKExtremes(m Payload) (UKExtremes, error) {
	date, err := dateField(m, "extremeDate")
	if err != nil {
		return UKExtremes{}, err
	}
	issuedAt, err := dateTimeField(m, "issuedAt")
	if err != nil {
		return UKExtremes{}, err
	}
	wrapper, err := objectField(m, "Regions")
	if err != nil {
		return UKExtremes{}, err
	}
	regions, err := decodeSequence(wrapper, "Region", DecodeExtremeRegion)
	if err != nil {
		return UKExtremes{}, err
	}
	return UKExtremes{Date: date, IssuedAt: issuedAt, Regions: regions}, nil
}
