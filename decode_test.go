package datapoint

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payload decodes a JSON literal into the shape the fetch layer hands to
// decoders.
func payload(t *testing.T, s string) Payload {
	t.Helper()
	var m Payload
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestStringField(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		s, err := stringField(payload(t, `{"T": "12.3"}`), "T")
		require.NoError(t, err)
		assert.Equal(t, "12.3", s)
	})

	t.Run("bare number", func(t *testing.T) {
		s, err := stringField(payload(t, `{"T": 12.3}`), "T")
		require.NoError(t, err)
		assert.Equal(t, "12.3", s)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := stringField(payload(t, `{}`), "T")
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "T", missing.Field)
	})
}

func TestFloatField(t *testing.T) {
	t.Run("numeric string", func(t *testing.T) {
		f, err := floatField(payload(t, `{"T": "-2.5"}`), "T")
		require.NoError(t, err)
		assert.Equal(t, -2.5, f)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := floatField(payload(t, `{"T": "warm"}`), "T")
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "T", invalid.Field)
		assert.Equal(t, "warm", invalid.Value)
	})
}

func TestFloatEither(t *testing.T) {
	t.Run("day key", func(t *testing.T) {
		f, err := floatEither(payload(t, `{"Dm": "13"}`), "Dm", "Nm")
		require.NoError(t, err)
		assert.Equal(t, 13.0, f)
	})

	t.Run("night key", func(t *testing.T) {
		f, err := floatEither(payload(t, `{"Nm": "4"}`), "Dm", "Nm")
		require.NoError(t, err)
		assert.Equal(t, 4.0, f)
	})

	t.Run("neither present", func(t *testing.T) {
		_, err := floatEither(payload(t, `{}`), "Dm", "Nm")
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Dm/Nm", missing.Field)
	})
}

func TestOptionalFields(t *testing.T) {
	t.Run("absent float is nil", func(t *testing.T) {
		f, err := optFloatField(payload(t, `{}`), "G")
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("present float", func(t *testing.T) {
		f, err := optFloatField(payload(t, `{"G": "21"}`), "G")
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, 21.0, *f)
	})

	t.Run("absent int is nil", func(t *testing.T) {
		n, err := optIntField(payload(t, `{}`), "U")
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("present int", func(t *testing.T) {
		n, err := optIntField(payload(t, `{"U": "3"}`), "U")
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, 3, *n)
	})
}

func TestDecodeSequence(t *testing.T) {
	dec := func(m Payload) (string, error) {
		return stringField(m, "name")
	}

	t.Run("bare object and single-element list decode identically", func(t *testing.T) {
		bare, err := decodeSequence(payload(t, `{"Rep": {"name": "a"}}`), "Rep", dec)
		require.NoError(t, err)
		list, err := decodeSequence(payload(t, `{"Rep": [{"name": "a"}]}`), "Rep", dec)
		require.NoError(t, err)
		assert.Equal(t, bare, list)
		assert.Equal(t, []string{"a"}, bare)
	})

	t.Run("multi-element list", func(t *testing.T) {
		out, err := decodeSequence(payload(t, `{"Rep": [{"name": "a"}, {"name": "b"}]}`), "Rep", dec)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, out)
	})

	t.Run("element error carries position", func(t *testing.T) {
		_, err := decodeSequence(payload(t, `{"Rep": [{"name": "a"}, {}]}`), "Rep", dec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Rep[1]")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := decodeSequence(payload(t, `{}`), "Rep", dec)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
	})
}

func TestDateField(t *testing.T) {
	t.Run("Z-suffixed date", func(t *testing.T) {
		d, err := dateField(payload(t, `{"value": "2024-03-01Z"}`), "value")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("plain date", func(t *testing.T) {
		d, err := dateField(payload(t, `{"value": "2024-03-01"}`), "value")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := dateField(payload(t, `{"value": "yesterday"}`), "value")
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "value", invalid.Field)
	})
}

func TestDateTimeField(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		d, err := dateTimeField(payload(t, `{"dataDate": "2024-03-01T10:00:00Z"}`), "dataDate")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), d)
	})

	t.Run("no zone indicator", func(t *testing.T) {
		d, err := dateTimeField(payload(t, `{"createdOn": "2024-03-01T09:30:00"}`), "createdOn")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), d)
	})
}

func TestTimeOfDayField(t *testing.T) {
	t.Run("midnight aliases", func(t *testing.T) {
		end, err := timeOfDayField(payload(t, `{"End": "24:00"}`), "End")
		require.NoError(t, err)
		start, err := timeOfDayField(payload(t, `{"Start": "00:00"}`), "Start")
		require.NoError(t, err)
		assert.Equal(t, start, end)
	})

	t.Run("with seconds", func(t *testing.T) {
		v, err := timeOfDayField(payload(t, `{"Issue": "06:00:00"}`), "Issue")
		require.NoError(t, err)
		assert.Equal(t, 6, v.Hour())
	})

	t.Run("plain clock value", func(t *testing.T) {
		v, err := timeOfDayField(payload(t, `{"Start": "17:00"}`), "Start")
		require.NoError(t, err)
		assert.Equal(t, 17, v.Hour())
		assert.Equal(t, 0, v.Minute())
	})
}

func TestMinutesField(t *testing.T) {
	d, err := minutesField(payload(t, `{"$": "540"}`), "$")
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour, d)
}
