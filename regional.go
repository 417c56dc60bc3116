package datapoint

import "time"

// RegionalForecastParagraph is one titled paragraph of regional forecast text.
type RegionalForecastParagraph struct {
	Title string
	Text  string
}

// DecodeRegionalForecastParagraph builds a paragraph from one Paragraph
// record.
func DecodeRegionalForecastParagraph(m Payload) (RegionalForecastParagraph, error) {
	title, err := stringField(m, "title")
	if err != nil {
		return RegionalForecastParagraph{}, err
	}
	text, err := stringField(m, "$")
	if err != nil {
		return RegionalForecastParagraph{}, err
	}
	return RegionalForecastParagraph{Title: title, Text: text}, nil
}

// RegionalForecastPeriodID names the day range a regional forecast period
// covers.
type RegionalForecastPeriodID string

const (
	DayOneToTwo        RegionalForecastPeriodID = "day1to2"
	DayThreeToFive     RegionalForecastPeriodID = "day3to5"
	DaySixToFifteen    RegionalForecastPeriodID = "day6to15"
	DaySixteenToThirty RegionalForecastPeriodID = "day16to30"
)

// ParseRegionalForecastPeriodID validates a period identifier.
func ParseRegionalForecastPeriodID(s string) (RegionalForecastPeriodID, error) {
	switch RegionalForecastPeriodID(s) {
	case DayOneToTwo, DayThreeToFive, DaySixToFifteen, DaySixteenToThirty:
		return RegionalForecastPeriodID(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "regional forecast period id"}
	}
}

// RegionalForecastPeriod is the text forecast for one day range.
type RegionalForecastPeriod struct {
	ID         RegionalForecastPeriodID
	Paragraphs []RegionalForecastParagraph
}

// DecodeRegionalForecastPeriod builds a RegionalForecastPeriod from one
// Period record.
func DecodeRegionalForecastPeriod(m Payload) (RegionalForecastPeriod, error) {
	idStr, err := stringField(m, "id")
	if err != nil {
		return RegionalForecastPeriod{}, err
	}
	id, err := ParseRegionalForecastPeriodID(idStr)
	if err != nil {
		return RegionalForecastPeriod{}, &InvalidValueError{Field: "id", Value: idStr, Want: "regional forecast period id"}
	}
	paragraphs, err := decodeSequence(m, "Paragraph", DecodeRegionalForecastParagraph)
	if err != nil {
		return RegionalForecastPeriod{}, err
	}
	return RegionalForecastPeriod{ID: id, Paragraphs: paragraphs}, nil
}

// RegionalForecast is the free-text forecast for one UK region.
type RegionalForecast struct {
	CreatedOn time.Time
	IssuedAt  time.Time
	RegionID  string
	Periods   []RegionalForecastPeriod
}

// DecodeRegionalForecast builds a RegionalForecast from the RegionalFcst
// element of the response.
func DecodeRegionalForecast(m Payload) (RegionalForecast, error) {
	createdOn, err := dateTimeField(m, "createdOn")
	if err != nil {
		return RegionalForecast{}, err
	}
	issuedAt, err := dateTimeField(m, "issuedAt")
	if err != nil {
		return RegionalForecast{}, err
	}
	regionID, err := stringField(m, "regionId")
	if err != nil {
		return RegionalForecast{}, err
	}
	wrapper, err := objectField(m, "FcstPeriods")
	if err != nil {
		return RegionalForecast{}, err
	}
	periods, err := decodeSequence(wrapper, "Period", DecodeRegionalForecastPeriod)
	if err != nil {
		return RegionalForecast{}, err
	}
	return RegionalForecast{
		CreatedOn: createdOn,
		IssuedAt:  issuedAt,
		RegionID:  regionID,
		Periods:   periods,
	}, nil
}
