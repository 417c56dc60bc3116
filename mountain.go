package datapoint

import (
	"fmt"
	"time"
)

// MountainForecastCapabilities describes one available mountain area
// forecast document.
type MountainForecastCapabilities struct {
	DataDate    time.Time
	ValidFrom   time.Time
	ValidTo     time.Time
	CreatedDate time.Time
	URI         string
	Area        string
	Risk        string
}

// DecodeMountainForecastCapabilities builds a MountainForecastCapabilities
// from one capabilities record.
func DecodeMountainForecastCapabilities(m Payload) (MountainForecastCapabilities, error) {
	dataDate, err := dateTimeField(m, "DataDate")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	validFrom, err := dateTimeField(m, "ValidFrom")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	validTo, err := dateTimeField(m, "ValidTo")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	createdDate, err := dateTimeField(m, "CreatedDate")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	uri, err := stringField(m, "URI")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	area, err := stringField(m, "Area")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	risk, err := stringField(m, "Risk")
	if err != nil {
		return MountainForecastCapabilities{}, err
	}
	return MountainForecastCapabilities{
		DataDate:    dataDate,
		ValidFrom:   validFrom,
		ValidTo:     validTo,
		CreatedDate: createdDate,
		URI:         uri,
		Area:        area,
		Risk:        risk,
	}, nil
}

// HazardElement names a hazard called out by a mountain forecast.
type HazardElement struct {
	Type  string
	Value string
}

// HazardLikelihood grades how likely a hazard is.
type HazardLikelihood struct {
	Type  string
	Value string
}

func decodeHazardDetail(m Payload) (string, string, error) {
	typ, err := stringField(m, "Type")
	if err != nil {
		return "", "", err
	}
	value, err := stringField(m, "$")
	if err != nil {
		return "", "", err
	}
	return typ, value, nil
}

// Hazard pairs a hazard with its likelihood.
type Hazard struct {
	Element    HazardElement
	Likelihood HazardLikelihood
}

// DecodeHazard builds a Hazard from one Hazard record.
func DecodeHazard(m Payload) (Hazard, error) {
	elem, err := objectField(m, "Element")
	if err != nil {
		return Hazard{}, err
	}
	elemType, elemValue, err := decodeHazardDetail(elem)
	if err != nil {
		return Hazard{}, err
	}
	likelihood, err := objectField(m, "Likelihood")
	if err != nil {
		return Hazard{}, err
	}
	likType, likValue, err := decodeHazardDetail(likelihood)
	if err != nil {
		return Hazard{}, err
	}
	return Hazard{
		Element:    HazardElement{Type: elemType, Value: elemValue},
		Likelihood: HazardLikelihood{Type: likType, Value: likValue},
	}, nil
}

// SimpleDay is the short outlook form used for later days of a mountain
// forecast.
type SimpleDay struct {
	Validity time.Time
	Summary  string
}

// DecodeSimpleDay builds a SimpleDay from one Day record.
func DecodeSimpleDay(m Payload) (SimpleDay, error) {
	validity, err := dateTimeField(m, "Validity")
	if err != nil {
		return SimpleDay{}, err
	}
	summary, err := stringField(m, "Summary")
	if err != nil {
		return SimpleDay{}, err
	}
	return SimpleDay{Validity: validity, Summary: summary}, nil
}

// Evening is the evening summary preceding the forecast days.
type Evening struct {
	Validity time.Time
	Summary  string
}

// DecodeEvening builds an Evening from the Evening record.
func DecodeEvening(m Payload) (Evening, error) {
	day, err := DecodeSimpleDay(m)
	if err != nil {
		return Evening{}, err
	}
	return Evening(day), nil
}

// Height is the conditions forecast at one named level of a mountain area.
type Height struct {
	Level         string
	WindDirection WindDirection
	WindSpeed     float64
	MaxGust       float64
	Temperature   float64
	FeelsLike     float64
}

// DecodeHeight builds a Height from one Height record.
func DecodeHeight(m Payload) (Height, error) {
	level, err := stringField(m, "Level")
	if err != nil {
		return Height{}, err
	}
	windDirection, err := windDirectionField(m, "WindDirection")
	if err != nil {
		return Height{}, err
	}
	windSpeed, err := floatField(m, "WindSpeed")
	if err != nil {
		return Height{}, err
	}
	maxGust, err := floatField(m, "MaxGust")
	if err != nil {
		return Height{}, err
	}
	temperature, err := floatField(m, "Temperature")
	if err != nil {
		return Height{}, err
	}
	feelsLike, err := floatField(m, "FeelsLike")
	if err != nil {
		return Height{}, err
	}
	return Height{
		Level:         level,
		WindDirection: windDirection,
		WindSpeed:     windSpeed,
		MaxGust:       maxGust,
		Temperature:   temperature,
		FeelsLike:     feelsLike,
	}, nil
}

// ExtendedDayPeriod is one intra-day interval of the first extended day.
// Start and End are wall-clock values anchored at the zero date; an end of
// "24:00" decodes to 00:00.
type ExtendedDayPeriod struct {
	Start                    time.Time
	End                      time.Time
	WeatherType              *SignificantWeather
	WeatherDescription       string
	PrecipitationProbability string
	Heights                  []Height
	FreezingLevel            string
}

// DecodeExtendedDayPeriod builds an ExtendedDayPeriod from one Period record.
func DecodeExtendedDayPeriod(m Payload) (ExtendedDayPeriod, error) {
	end, err := timeOfDayField(m, "End")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	start, err := timeOfDayField(m, "Start")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	sigWeather, err := objectField(m, "SignificantWeather")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	weather, err := weatherField(sigWeather, "Code")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	description, err := stringField(sigWeather, "$")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	precipitation, err := objectField(m, "Precipitation")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	probability, err := stringField(precipitation, "Probability")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	heights, err := decodeSequence(m, "Height", DecodeHeight)
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	freezingLevel, err := stringField(m, "FreezingLevel")
	if err != nil {
		return ExtendedDayPeriod{}, err
	}
	return ExtendedDayPeriod{
		Start:                    start,
		End:                      end,
		WeatherType:              weather,
		WeatherDescription:       description,
		PrecipitationProbability: probability,
		Heights:                  heights,
		FreezingLevel:            freezingLevel,
	}, nil
}

// FirstExtendedDay is the fully detailed first day of a mountain forecast.
type FirstExtendedDay struct {
	Validity         time.Time
	Weather          string
	Visibility       string
	Headline         string
	Confidence       string
	View             string
	CloudFreeHillTop string
	Hazards          []Hazard
	Periods          []ExtendedDayPeriod
}

// DecodeFirstExtendedDay builds a FirstExtendedDay from the first Day record.
func DecodeFirstExtendedDay(m Payload) (FirstExtendedDay, error) {
	validity, err := dateTimeField(m, "Validity")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	headline, err := stringField(m, "Headline")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	confidence, err := stringField(m, "Confidence")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	view, err := stringField(m, "View")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	cloudFree, err := stringField(m, "CloudFreeHillTop")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	weather, err := stringField(m, "Weather")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	visibility, err := stringField(m, "Visibility")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	hazardsWrapper, err := objectField(m, "Hazards")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	hazards, err := decodeSequence(hazardsWrapper, "Hazard", DecodeHazard)
	if err != nil {
		return FirstExtendedDay{}, err
	}
	periodsWrapper, err := objectField(m, "Periods")
	if err != nil {
		return FirstExtendedDay{}, err
	}
	periods, err := decodeSequence(periodsWrapper, "Period", DecodeExtendedDayPeriod)
	if err != nil {
		return FirstExtendedDay{}, err
	}
	return FirstExtendedDay{
		Validity:         validity,
		Weather:          weather,
		Visibility:       visibility,
		Headline:         headline,
		Confidence:       confidence,
		View:             view,
		CloudFreeHillTop: cloudFree,
		Hazards:          hazards,
		Periods:          periods,
	}, nil
}

// ExtendedDayPeakTemperature describes temperatures at the peaks.
type ExtendedDayPeakTemperature struct {
	Level       string
	Description string
}

// DecodeExtendedDayPeakTemperature builds the peak temperature description
// from the Temperature Peak record.
func DecodeExtendedDayPeakTemperature(m Payload) (ExtendedDayPeakTemperature, error) {
	level, err := stringField(m, "Level")
	if err != nil {
		return ExtendedDayPeakTemperature{}, err
	}
	description, err := stringField(m, "$")
	if err != nil {
		return ExtendedDayPeakTemperature{}, err
	}
	return ExtendedDayPeakTemperature{Level: level, Description: description}, nil
}

// ExtendedDayValleyTemperature describes temperatures in the valleys.
type ExtendedDayValleyTemperature struct {
	Title       string
	Description string
}

// DecodeExtendedDayValleyTemperature builds the valley temperature
// description from the Temperature Valley record.
func DecodeExtendedDayValleyTemperature(m Payload) (ExtendedDayValleyTemperature, error) {
	title, err := stringField(m, "Title")
	if err != nil {
		return ExtendedDayValleyTemperature{}, err
	}
	description, err := stringField(m, "$")
	if err != nil {
		return ExtendedDayValleyTemperature{}, err
	}
	return ExtendedDayValleyTemperature{Title: title, Description: description}, nil
}

// SecondExtendedDay is the partially detailed second day of a mountain
// forecast.
type SecondExtendedDay struct {
	Validity          time.Time
	Weather           string
	Visibility        string
	Wind              string
	HillCloud         string
	PeakTemperature   ExtendedDayPeakTemperature
	ValleyTemperature ExtendedDayValleyTemperature
	Freezing          string
}

// DecodeSecondExtendedDay builds a SecondExtendedDay from the second Day
// record.
func DecodeSecondExtendedDay(m Payload) (SecondExtendedDay, error) {
	validity, err := dateTimeField(m, "Validity")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	weather, err := stringField(m, "Weather")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	wind, err := stringField(m, "Wind")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	hillCloud, err := stringField(m, "HillCloud")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	visibility, err := stringField(m, "Visibility")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	temperature, err := objectField(m, "Temperature")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	peakObj, err := objectField(temperature, "Peak")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	peak, err := DecodeExtendedDayPeakTemperature(peakObj)
	if err != nil {
		return SecondExtendedDay{}, err
	}
	valleyObj, err := objectField(temperature, "Valley")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	valley, err := DecodeExtendedDayValleyTemperature(valleyObj)
	if err != nil {
		return SecondExtendedDay{}, err
	}
	freezing, err := stringField(temperature, "Freezing")
	if err != nil {
		return SecondExtendedDay{}, err
	}
	return SecondExtendedDay{
		Validity:          validity,
		Weather:           weather,
		Visibility:        visibility,
		Wind:              wind,
		HillCloud:         hillCloud,
		PeakTemperature:   peak,
		ValleyTemperature: valley,
		Freezing:          freezing,
	}, nil
}

// MountainAreaForecast is the multi-day text forecast for one mountain area.
// The first two day slots carry progressively less detail and any remaining
// days are short summaries; slots beyond what the feed provides stay nil or
// empty.
type MountainAreaForecast struct {
	Location  string
	Issue     time.Time
	Issued    time.Time
	Type      string
	Evening   Evening
	FirstDay  *FirstExtendedDay
	SecondDay *SecondExtendedDay
	OtherDays []SimpleDay
}

// DecodeMountainAreaForecast builds a MountainAreaForecast from the Report
// element of the response.
func DecodeMountainAreaForecast(m Payload) (MountainAreaForecast, error) {
	location, err := stringField(m, "Location")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	issue, err := timeOfDayField(m, "Issue")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	issued, err := dateTimeField(m, "Issued")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	typ, err := stringField(m, "Type")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	eveningObj, err := objectField(m, "Evening")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	evening, err := DecodeEvening(eveningObj)
	if err != nil {
		return MountainAreaForecast{}, err
	}
	daysWrapper, err := objectField(m, "Days")
	if err != nil {
		return MountainAreaForecast{}, err
	}
	days, err := sequenceField(daysWrapper, "Day")
	if err != nil {
		return MountainAreaForecast{}, err
	}

	f := MountainAreaForecast{
		Location: location,
		Issue:    issue,
		Issued:   issued,
		Type:     typ,
		Evening:  evening,
	}
	for i, raw := range days {
		obj, ok := raw.(map[string]any)
		if !ok {
			return MountainAreaForecast{}, &InvalidValueError{Field: "Day", Value: fmt.Sprint(raw), Want: "object"}
		}
		switch i {
		case 0:
			first, err := DecodeFirstExtendedDay(obj)
			if err != nil {
				return MountainAreaForecast{}, fmt.Errorf("Day[%d]: %w", i, err)
			}
			f.FirstDay = &first
		case 1:
			second, err := DecodeSecondExtendedDay(obj)
			if err != nil {
				return MountainAreaForecast{}, fmt.Errorf("Day[%d]: %w", i, err)
			}
			f.SecondDay = &second
		default:
			day, err := DecodeSimpleDay(obj)
			if err != nil {
				return MountainAreaForecast{}, fmt.Errorf("Day[%d]: %w", i, err)
			}
			f.OtherDays = append(f.OtherDays, day)
		}
	}
	return f, nil
}
