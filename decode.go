package datapoint

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Payload is one decoded JSON object as handed over by the fetch layer.
// Every decoder in this package is a pure function of a Payload (plus, for
// forecasts, a Resolution) and returns a fully built value or an error.
type Payload = map[string]any

const (
	dateLayout           = "2006-01-02"
	clockLayout          = "15:04"
	clockSecondsLayout   = "15:04:05"
	dateTimeNoZoneLayout = "2006-01-02T15:04:05"
)

// wireString renders a raw decoded JSON scalar in its wire string form.
// DataPoint serializes nearly every scalar as a string, but a few feeds use
// bare numbers for the same fields.
func wireString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func rawField(m Payload, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	return v, nil
}

func stringField(m Payload, key string) (string, error) {
	v, err := rawField(m, key)
	if err != nil {
		return "", err
	}
	s, ok := wireString(v)
	if !ok {
		return "", &InvalidValueError{Field: key, Value: fmt.Sprint(v), Want: "string"}
	}
	return s, nil
}

func floatField(m Payload, key string) (float64, error) {
	s, err := stringField(m, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &InvalidValueError{Field: key, Value: s, Want: "number"}
	}
	return f, nil
}

func optFloatField(m Payload, key string) (*float64, error) {
	if _, ok := m[key]; !ok {
		return nil, nil
	}
	f, err := floatField(m, key)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func intField(m Payload, key string) (int, error) {
	s, err := stringField(m, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidValueError{Field: key, Value: s, Want: "integer"}
	}
	return n, nil
}

func optIntField(m Payload, key string) (*int, error) {
	if _, ok := m[key]; !ok {
		return nil, nil
	}
	n, err := intField(m, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// floatEither reads whichever of the two keys is present. Daily forecast
// records populate either the day-suffixed or the night-suffixed key set,
// never both.
func floatEither(m Payload, dayKey, nightKey string) (float64, error) {
	if _, ok := m[dayKey]; ok {
		return floatField(m, dayKey)
	}
	if _, ok := m[nightKey]; ok {
		return floatField(m, nightKey)
	}
	return 0, &MissingFieldError{Field: dayKey + "/" + nightKey}
}

func objectField(m Payload, key string) (Payload, error) {
	v, err := rawField(m, key)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &InvalidValueError{Field: key, Value: fmt.Sprint(v), Want: "object"}
	}
	return obj, nil
}

// asSequence normalizes the API's maybe-a-list, maybe-a-bare-value shape to
// a sequence. A single-entry field arrives as a bare value, longer ones as a
// list; both decode to the same thing.
func asSequence(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}

func sequenceField(m Payload, key string) ([]any, error) {
	v, err := rawField(m, key)
	if err != nil {
		return nil, err
	}
	return asSequence(v), nil
}

// decodeSequence coerces m[key] to a sequence and maps dec over its elements.
// One failed element fails the whole sequence.
func decodeSequence[T any](m Payload, key string, dec func(Payload) (T, error)) ([]T, error) {
	raw, err := sequenceField(m, key)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, &InvalidValueError{Field: key, Value: fmt.Sprint(el), Want: "object"}
		}
		v, err := dec(obj)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// dateField parses a date-only value such as "2024-03-01Z". The API suffixes
// date-only values with a "Z" that is not valid for a time-free value, so it
// is stripped before parsing.
func dateField(m Payload, key string) (time.Time, error) {
	s, err := stringField(m, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, strings.TrimSuffix(s, "Z"))
	if err != nil {
		return time.Time{}, &InvalidValueError{Field: key, Value: s, Want: "date"}
	}
	return t, nil
}

// dateTimeField parses a full timestamp, with or without a zone indicator.
func dateTimeField(m Payload, key string) (time.Time, error) {
	s, err := stringField(m, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseDateTime(s)
	if err != nil {
		return time.Time{}, &InvalidValueError{Field: key, Value: s, Want: "timestamp"}
	}
	return t, nil
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateTimeNoZoneLayout, s)
}

// timeOfDayField parses a wall-clock value such as "17:00", anchored at Go's
// zero date. An end-of-interval "24:00" decodes to the start of day.
func timeOfDayField(m Payload, key string) (time.Time, error) {
	s, err := stringField(m, key)
	if err != nil {
		return time.Time{}, err
	}
	if s == "24:00" {
		// Midnight at the end of an interval is the start of the next day.
		s = "00:00"
	}
	if t, err := time.Parse(clockLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(clockSecondsLayout, s)
	if err != nil {
		return time.Time{}, &InvalidValueError{Field: key, Value: s, Want: "time of day"}
	}
	return t, nil
}

// minutesField parses a minutes-after-midnight offset, the "$" value of Rep
// records.
func minutesField(m Payload, key string) (time.Duration, error) {
	f, err := floatField(m, key)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Minute)), nil
}
