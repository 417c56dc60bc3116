package datapoint

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SurfacePressureChartCapability describes one available surface pressure
// chart image.
type SurfacePressureChartCapability struct {
	DataDate     time.Time
	ValidFrom    time.Time
	ValidTo      time.Time
	URI          string
	DataDateTime int
	Period       int
}

// DecodeSurfacePressureChartCapability builds a capability from one
// BWSurfacePressureChartList entry.
func DecodeSurfacePressureChartCapability(m Payload) (SurfacePressureChartCapability, error) {
	dataDate, err := dateTimeField(m, "DataDate")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	validFrom, err := dateTimeField(m, "ValidFrom")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	validTo, err := dateTimeField(m, "ValidTo")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	uri, err := stringField(m, "ProductURI")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	dataDateTime, err := intField(m, "DataDateTime")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	period, err := intField(m, "ForecastPeriod")
	if err != nil {
		return SurfacePressureChartCapability{}, err
	}
	return SurfacePressureChartCapability{
		DataDate:     dataDate,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		URI:          uri,
		DataDateTime: dataDateTime,
		Period:       period,
	}, nil
}

// ForecastLayer is one forecast image layer and its available timesteps,
// given as hour offsets from the default time.
type ForecastLayer struct {
	DisplayName string
	Name        string
	LayerName   string
	DefaultTime time.Time
	Timesteps   []int
}

// DecodeForecastLayer builds a ForecastLayer from one Layer record.
func DecodeForecastLayer(m Payload) (ForecastLayer, error) {
	displayName, err := stringField(m, "@displayName")
	if err != nil {
		return ForecastLayer{}, err
	}
	service, err := objectField(m, "Service")
	if err != nil {
		return ForecastLayer{}, err
	}
	name, err := stringField(service, "@name")
	if err != nil {
		return ForecastLayer{}, err
	}
	layerName, err := stringField(service, "LayerName")
	if err != nil {
		return ForecastLayer{}, err
	}
	timesteps, err := objectField(service, "Timesteps")
	if err != nil {
		return ForecastLayer{}, err
	}
	defaultTime, err := dateTimeField(timesteps, "@defaultTime")
	if err != nil {
		return ForecastLayer{}, err
	}
	rawSteps, err := sequenceField(timesteps, "Timestep")
	if err != nil {
		return ForecastLayer{}, err
	}
	steps := make([]int, 0, len(rawSteps))
	for i, raw := range rawSteps {
		s, ok := wireString(raw)
		if !ok {
			return ForecastLayer{}, &InvalidValueError{Field: "Timestep", Value: fmt.Sprint(raw), Want: "integer"}
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return ForecastLayer{}, &InvalidValueError{Field: fmt.Sprintf("Timestep[%d]", i), Value: s, Want: "integer"}
		}
		steps = append(steps, n)
	}
	return ForecastLayer{
		DisplayName: displayName,
		Name:        name,
		LayerName:   layerName,
		DefaultTime: defaultTime,
		Timesteps:   steps,
	}, nil
}

// ObservationLayer is one observation image layer and the times an image is
// available for.
type ObservationLayer struct {
	DisplayName string
	Name        string
	LayerName   string
	Times       []time.Time
}

// DecodeObservationLayer builds an ObservationLayer from one Layer record.
func DecodeObservationLayer(m Payload) (ObservationLayer, error) {
	displayName, err := stringField(m, "@displayName")
	if err != nil {
		return ObservationLayer{}, err
	}
	service, err := objectField(m, "Service")
	if err != nil {
		return ObservationLayer{}, err
	}
	name, err := stringField(service, "@name")
	if err != nil {
		return ObservationLayer{}, err
	}
	layerName, err := stringField(service, "LayerName")
	if err != nil {
		return ObservationLayer{}, err
	}
	timesWrapper, err := objectField(service, "Times")
	if err != nil {
		return ObservationLayer{}, err
	}
	rawTimes, err := sequenceField(timesWrapper, "Time")
	if err != nil {
		return ObservationLayer{}, err
	}
	times := make([]time.Time, 0, len(rawTimes))
	for i, raw := range rawTimes {
		s, ok := raw.(string)
		if !ok {
			return ObservationLayer{}, &InvalidValueError{Field: "Time", Value: fmt.Sprint(raw), Want: "timestamp"}
		}
		t, err := parseDateTime(s)
		if err != nil {
			return ObservationLayer{}, &InvalidValueError{Field: fmt.Sprintf("Time[%d]", i), Value: s, Want: "timestamp"}
		}
		times = append(times, t)
	}
	return ObservationLayer{
		DisplayName: displayName,
		Name:        name,
		LayerName:   layerName,
		Times:       times,
	}, nil
}

// ForecastLayerData is the forecast layer capabilities document: the image
// URL template plus the available layers.
type ForecastLayerData struct {
	Type       string
	TimeFormat string
	BaseURL    string
	Layers     []ForecastLayer
}

// DecodeForecastLayerData builds a ForecastLayerData from the Layers element
// of the response.
func DecodeForecastLayerData(m Payload) (ForecastLayerData, error) {
	typ, err := stringField(m, "@type")
	if err != nil {
		return ForecastLayerData{}, err
	}
	baseURLObj, err := objectField(m, "BaseUrl")
	if err != nil {
		return ForecastLayerData{}, err
	}
	timeFormat, err := stringField(baseURLObj, "@forServiceTimeFormat")
	if err != nil {
		return ForecastLayerData{}, err
	}
	baseURL, err := stringField(baseURLObj, "$")
	if err != nil {
		return ForecastLayerData{}, err
	}
	layers, err := decodeSequence(m, "Layer", DecodeForecastLayer)
	if err != nil {
		return ForecastLayerData{}, err
	}
	return ForecastLayerData{
		Type:       typ,
		TimeFormat: timeFormat,
		BaseURL:    baseURL,
		Layers:     layers,
	}, nil
}

// ObservationLayerData is the observation layer capabilities document.
type ObservationLayerData struct {
	Type       string
	TimeFormat string
	BaseURL    string
	Layers     []ObservationLayer
}

// DecodeObservationLayerData builds an ObservationLayerData from the Layers
// element of the response.
func DecodeObservationLayerData(m Payload) (ObservationLayerData, error) {
	typ, err := stringField(m, "@type")
	if err != nil {
		return ObservationLayerData{}, err
	}
	baseURLObj, err := objectField(m, "BaseUrl")
	if err != nil {
		return ObservationLayerData{}, err
	}
	timeFormat, err := stringField(baseURLObj, "@forServiceTimeFormat")
	if err != nil {
		return ObservationLayerData{}, err
	}
	baseURL, err := stringField(baseURLObj, "$")
	if err != nil {
		return ObservationLayerData{}, err
	}
	layers, err := decodeSequence(m, "Layer", DecodeObservationLayer)
	if err != nil {
		return ObservationLayerData{}, err
	}
	return ObservationLayerData{
		Type:       typ,
		TimeFormat: timeFormat,
		BaseURL:    baseURL,
		Layers:     layers,
	}, nil
}

// layoutFromWireFormat converts the API's @forServiceTimeFormat tokens
// ("YYYY-MM-DDThh:mm:ss") into a Go time layout.
func layoutFromWireFormat(format string) string {
	r := strings.NewReplacer(
		"YYYY", "2006",
		"MM", "01",
		"DD", "02",
		"hh", "15",
		"mm", "04",
		"ss", "05",
	)
	return r.Replace(format)
}

// ImageURL expands the capability document's URL template for one layer at
// the given forecast timestep.
func (d ForecastLayerData) ImageURL(l ForecastLayer, timestep int, key string) string {
	r := strings.NewReplacer(
		"{LayerName}", l.LayerName,
		"{ImageFormat}", "png",
		"{DefaultTime}", l.DefaultTime.Format(layoutFromWireFormat(d.TimeFormat)),
		"{Timestep}", strconv.Itoa(timestep),
		"{key}", key,
	)
	return r.Replace(d.BaseURL)
}

// ImageURL expands the capability document's URL template for one layer at
// the given observation time, which should come from the layer's Times.
func (d ObservationLayerData) ImageURL(l ObservationLayer, at time.Time, key string) string {
	r := strings.NewReplacer(
		"{LayerName}", l.LayerName,
		"{ImageFormat}", "png",
		"{Time}", at.Format(layoutFromWireFormat(d.TimeFormat)),
		"{key}", key,
	)
	return r.Replace(d.BaseURL)
}
