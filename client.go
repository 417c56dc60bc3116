package datapoint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AllLocations requests data for every available site instead of a single
// location ID.
const AllLocations = "all"

// DefaultBaseURL is the public DataPoint endpoint.
const DefaultBaseURL = "http://datapoint.metoffice.gov.uk/public/data"

// Client calls the Met Office DataPoint API and decodes the responses into
// domain types. The zero value is not usable; construct with NewClient.
type Client struct {
	key        string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *Metrics
}

// NewClient creates a DataPoint client authenticated with the given API key.
func NewClient(key string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTPClient(key, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTPClient creates a client using the supplied http.Client,
// for callers that need custom transport behaviour.
func NewClientWithHTTPClient(key string, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		key:        key,
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		logger:     logger,
	}
}

// SetBaseURL overrides the API base URL. Trailing slashes are trimmed.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// SetMetrics attaches Prometheus instrumentation to the client.
func (c *Client) SetMetrics(m *Metrics) {
	c.metrics = m
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) (Payload, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.key)
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "error", start)
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.observe(endpoint, "http_error", start)
		c.logger.Warn("datapoint request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("datapoint API error: status %d: %s", resp.StatusCode, body)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.observe(endpoint, "error", start)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.observe(endpoint, "success", start)
	c.logger.Debug("datapoint request", "endpoint", endpoint, "duration", time.Since(start))
	return payload, nil
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(endpoint, outcome).Inc()
	c.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// SiteList returns the sites for which daily and three-hourly forecasts are
// available.
func (c *Client) SiteList(ctx context.Context) ([]SiteInfo, error) {
	j, err := c.get(ctx, "forecast_sitelist", "val/wxfcs/all/json/sitelist", nil)
	if err != nil {
		return nil, err
	}
	return decodeSiteList(j)
}

// ObservationSiteList returns the sites for which hourly observations are
// available.
func (c *Client) ObservationSiteList(ctx context.Context) ([]SiteInfo, error) {
	j, err := c.get(ctx, "observation_sitelist", "val/wxobs/all/json/sitelist", nil)
	if err != nil {
		return nil, err
	}
	return decodeSiteList(j)
}

func decodeSiteList(j Payload) ([]SiteInfo, error) {
	locations, err := objectField(j, "Locations")
	if err != nil {
		return nil, err
	}
	return decodeSequence(locations, "Location", DecodeSiteInfo)
}

// ForecastCapabilities returns the date of the last data update and the
// timesteps available at the given resolution. Daily timesteps carry a date
// only, with the time portion zeroed.
func (c *Client) ForecastCapabilities(ctx context.Context, res Resolution) (time.Time, []time.Time, error) {
	if _, err := ParseResolution(string(res)); err != nil {
		return time.Time{}, nil, err
	}
	params := url.Values{"res": {string(res)}}
	j, err := c.get(ctx, "forecast_capabilities", "val/wxfcs/all/json/capabilities", params)
	if err != nil {
		return time.Time{}, nil, err
	}
	resource, err := objectField(j, "Resource")
	if err != nil {
		return time.Time{}, nil, err
	}
	dataDate, err := dateTimeField(resource, "dataDate")
	if err != nil {
		return time.Time{}, nil, err
	}
	steps, err := decodeTimesteps(resource)
	if err != nil {
		return time.Time{}, nil, err
	}
	if res == ResolutionDaily {
		for i, ts := range steps {
			steps[i] = ts.Truncate(24 * time.Hour)
		}
	}
	return dataDate, steps, nil
}

// ObservationCapabilities returns the timesteps for which observations are
// available.
func (c *Client) ObservationCapabilities(ctx context.Context) ([]time.Time, error) {
	params := url.Values{"res": {"hourly"}}
	j, err := c.get(ctx, "observation_capabilities", "val/wxobs/all/json/capabilities", params)
	if err != nil {
		return nil, err
	}
	resource, err := objectField(j, "Resource")
	if err != nil {
		return nil, err
	}
	return decodeTimesteps(resource)
}

func decodeTimesteps(resource Payload) ([]time.Time, error) {
	ts, err := objectField(resource, "TimeSteps")
	if err != nil {
		return nil, err
	}
	raw, err := sequenceField(ts, "TS")
	if err != nil {
		return nil, err
	}
	steps := make([]time.Time, 0, len(raw))
	for i, v := range raw {
		s, ok := wireString(v)
		if !ok {
			return nil, fmt.Errorf("TS[%d]: %w", i, &InvalidValueError{Field: "TS", Value: fmt.Sprint(v), Want: "timestamp"})
		}
		t, err := parseTimestep(s)
		if err != nil {
			return nil, fmt.Errorf("TS[%d]: %w", i, err)
		}
		steps = append(steps, t)
	}
	return steps, nil
}

func parseTimestep(s string) (time.Time, error) {
	if t, err := parseDateTime(s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSuffix(s, "Z"))
	if err != nil {
		return time.Time{}, &InvalidValueError{Field: "TS", Value: s, Want: "timestamp"}
	}
	return t, nil
}

// Forecast returns all available forecasts for a location at the given
// resolution, along with the date of the last data update. Pass AllLocations
// to fetch every site at once.
func (c *Client) Forecast(ctx context.Context, res Resolution, locationID string) (time.Time, Forecast, error) {
	return c.fetchForecast(ctx, res, locationID, url.Values{})
}

// ForecastAt returns the forecast for a single timestep, which must be one
// of the values reported by ForecastCapabilities.
func (c *Client) ForecastAt(ctx context.Context, res Resolution, locationID string, at time.Time) (time.Time, Forecast, error) {
	params := url.Values{}
	if res == ResolutionDaily {
		params.Set("time", at.Format(dateLayout))
	} else {
		params.Set("time", at.UTC().Format(time.RFC3339))
	}
	return c.fetchForecast(ctx, res, locationID, params)
}

func (c *Client) fetchForecast(ctx context.Context, res Resolution, locationID string, params url.Values) (time.Time, Forecast, error) {
	if _, err := ParseResolution(string(res)); err != nil {
		return time.Time{}, Forecast{}, err
	}
	params.Set("res", string(res))
	path := fmt.Sprintf("val/wxfcs/all/json/%s", url.PathEscape(locationID))
	j, err := c.get(ctx, "forecast", path, params)
	if err != nil {
		return time.Time{}, Forecast{}, err
	}
	dv, err := dataValues(j)
	if err != nil {
		return time.Time{}, Forecast{}, err
	}
	dataDate, err := dateTimeField(dv, "dataDate")
	if err != nil {
		return time.Time{}, Forecast{}, err
	}
	location, err := objectField(dv, "Location")
	if err != nil {
		return time.Time{}, Forecast{}, err
	}
	forecast, err := DecodeForecast(location, res)
	if err != nil {
		return time.Time{}, Forecast{}, fmt.Errorf("Location: %w", err)
	}
	return dataDate, forecast, nil
}

// Observations returns the hourly observations for a location and the date
// of the last data update. The observation is nil when the API has no data
// for an otherwise valid site.
func (c *Client) Observations(ctx context.Context, locationID string) (time.Time, *Observation, error) {
	params := url.Values{"res": {"hourly"}}
	path := fmt.Sprintf("val/wxobs/all/json/%s", url.PathEscape(locationID))
	j, err := c.get(ctx, "observations", path, params)
	if err != nil {
		return time.Time{}, nil, err
	}
	dv, err := dataValues(j)
	if err != nil {
		return time.Time{}, nil, err
	}
	dataDate, err := dateTimeField(dv, "dataDate")
	if err != nil {
		return time.Time{}, nil, err
	}
	if _, ok := dv["Location"]; !ok {
		return dataDate, nil, nil
	}
	location, err := objectField(dv, "Location")
	if err != nil {
		return time.Time{}, nil, err
	}
	obs, err := DecodeObservation(location)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("Location: %w", err)
	}
	return dataDate, &obs, nil
}

func dataValues(j Payload) (Payload, error) {
	siteRep, err := objectField(j, "SiteRep")
	if err != nil {
		return nil, err
	}
	return objectField(siteRep, "DV")
}

// UKExtremesCapabilities returns the date of the latest UK extremes
// observation and the time it was issued.
func (c *Client) UKExtremesCapabilities(ctx context.Context) (time.Time, time.Time, error) {
	j, err := c.get(ctx, "extremes_capabilities", "txt/wxobs/ukextremes/json/capabilities", nil)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	ext, err := objectField(j, "UkExtremes")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	extremeDate, err := dateField(ext, "extremeDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	issuedAt, err := dateTimeField(ext, "issuedAt")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return extremeDate, issuedAt, nil
}

// UKExtremes returns the latest recorded weather extremes across UK regions.
func (c *Client) UKExtremes(ctx context.Context) (UKExtremes, error) {
	j, err := c.get(ctx, "extremes", "txt/wxobs/ukextremes/json/latest", nil)
	if err != nil {
		return UKExtremes{}, err
	}
	ext, err := objectField(j, "UkExtremes")
	if err != nil {
		return UKExtremes{}, err
	}
	return DecodeUKExtremes(ext)
}

// RegionalForecastSiteList returns the regions for which textual regional
// forecasts are issued.
func (c *Client) RegionalForecastSiteList(ctx context.Context) ([]RegionalForecastLocation, error) {
	j, err := c.get(ctx, "regional_sitelist", "txt/wxfcs/regionalforecast/json/sitelist", nil)
	if err != nil {
		return nil, err
	}
	locations, err := objectField(j, "Locations")
	if err != nil {
		return nil, err
	}
	return decodeSequence(locations, "Location", DecodeRegionalForecastLocation)
}

// RegionalForecastCapabilities returns the time the most recent regional
// forecasts were issued.
func (c *Client) RegionalForecastCapabilities(ctx context.Context) (time.Time, error) {
	j, err := c.get(ctx, "regional_capabilities", "txt/wxfcs/regionalforecast/json/capabilities", nil)
	if err != nil {
		return time.Time{}, err
	}
	fcst, err := objectField(j, "RegionalFcst")
	if err != nil {
		return time.Time{}, err
	}
	return dateTimeField(fcst, "issuedAt")
}

// RegionalForecast returns the textual forecast for the given region ID.
func (c *Client) RegionalForecast(ctx context.Context, locationID int) (RegionalForecast, error) {
	path := fmt.Sprintf("txt/wxfcs/regionalforecast/json/%d", locationID)
	j, err := c.get(ctx, "regional_forecast", path, nil)
	if err != nil {
		return RegionalForecast{}, err
	}
	fcst, err := objectField(j, "RegionalFcst")
	if err != nil {
		return RegionalForecast{}, err
	}
	return DecodeRegionalForecast(fcst)
}

// MountainAreaSiteList returns the mountain areas for which detailed
// forecasts are issued.
func (c *Client) MountainAreaSiteList(ctx context.Context) ([]MountainAreaLocation, error) {
	j, err := c.get(ctx, "mountain_sitelist", "txt/wxfcs/mountainarea/json/sitelist", nil)
	if err != nil {
		return nil, err
	}
	locations, err := objectField(j, "Locations")
	if err != nil {
		return nil, err
	}
	return decodeSequence(locations, "Location", DecodeMountainAreaLocation)
}

// MountainAreaCapabilities returns the available mountain area forecasts and
// their validity windows.
func (c *Client) MountainAreaCapabilities(ctx context.Context) ([]MountainForecastCapabilities, error) {
	j, err := c.get(ctx, "mountain_capabilities", "txt/wxfcs/mountainarea/json/capabilities", nil)
	if err != nil {
		return nil, err
	}
	list, err := objectField(j, "MountainAreaForecastList")
	if err != nil {
		return nil, err
	}
	return decodeSequence(list, "MountainAreaForecast", DecodeMountainForecastCapabilities)
}

// ForecastLayerCapabilities returns the available forecast image layers and
// the URL template used to fetch them.
func (c *Client) ForecastLayerCapabilities(ctx context.Context) (ForecastLayerData, error) {
	j, err := c.get(ctx, "forecast_layers", "layer/wxfcs/all/json/capabilities", nil)
	if err != nil {
		return ForecastLayerData{}, err
	}
	layers, err := objectField(j, "Layers")
	if err != nil {
		return ForecastLayerData{}, err
	}
	return DecodeForecastLayerData(layers)
}

// ObservationLayerCapabilities returns the available observation image
// layers and the URL template used to fetch them.
func (c *Client) ObservationLayerCapabilities(ctx context.Context) (ObservationLayerData, error) {
	j, err := c.get(ctx, "observation_layers", "layer/wxobs/all/json/capabilities", nil)
	if err != nil {
		return ObservationLayerData{}, err
	}
	layers, err := objectField(j, "Layers")
	if err != nil {
		return ObservationLayerData{}, err
	}
	return DecodeObservationLayerData(layers)
}

// SurfacePressureChartCapabilities returns the available surface pressure
// chart images.
func (c *Client) SurfacePressureChartCapabilities(ctx context.Context) ([]SurfacePressureChartCapability, error) {
	j, err := c.get(ctx, "surface_pressure", "image/wxfcs/surfacepressure/json/capabilities", nil)
	if err != nil {
		return nil, err
	}
	list, err := objectField(j, "BWSurfacePressureChartList")
	if err != nil {
		return nil, err
	}
	return decodeSequence(list, "BWSurfacePressureChart", DecodeSurfacePressureChartCapability)
}
