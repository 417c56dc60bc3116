package datapoint

// SiteInfo is one entry in the forecast or observation site lists.
type SiteInfo struct {
	ID        int
	Latitude  float64
	Longitude float64
	Name      string
}

// Coordinates returns latitude and longitude as a pair.
func (s SiteInfo) Coordinates() (float64, float64) {
	return s.Latitude, s.Longitude
}

// DecodeSiteInfo builds a SiteInfo from one site-list entry.
func DecodeSiteInfo(m Payload) (SiteInfo, error) {
	id, err := intField(m, "id")
	if err != nil {
		return SiteInfo{}, err
	}
	lat, err := floatField(m, "latitude")
	if err != nil {
		return SiteInfo{}, err
	}
	lon, err := floatField(m, "longitude")
	if err != nil {
		return SiteInfo{}, err
	}
	name, err := stringField(m, "name")
	if err != nil {
		return SiteInfo{}, err
	}
	return SiteInfo{ID: id, Latitude: lat, Longitude: lon, Name: name}, nil
}

// ForecastLocation is the site header attached to a forecast or observation,
// which uses shorter keys than the site lists and adds country and continent.
type ForecastLocation struct {
	SiteInfo
	Country   string
	Continent string

	// The API returns elevation but does not document it, so it is optional.
	Elevation *float64
}

// DecodeForecastLocation builds a ForecastLocation from a forecast or
// observation Location header.
func DecodeForecastLocation(m Payload) (ForecastLocation, error) {
	id, err := intField(m, "i")
	if err != nil {
		return ForecastLocation{}, err
	}
	lat, err := floatField(m, "lat")
	if err != nil {
		return ForecastLocation{}, err
	}
	lon, err := floatField(m, "lon")
	if err != nil {
		return ForecastLocation{}, err
	}
	name, err := stringField(m, "name")
	if err != nil {
		return ForecastLocation{}, err
	}
	country, err := stringField(m, "country")
	if err != nil {
		return ForecastLocation{}, err
	}
	continent, err := stringField(m, "continent")
	if err != nil {
		return ForecastLocation{}, err
	}
	elevation, err := optFloatField(m, "elevation")
	if err != nil {
		return ForecastLocation{}, err
	}
	return ForecastLocation{
		SiteInfo:  SiteInfo{ID: id, Latitude: lat, Longitude: lon, Name: name},
		Country:   country,
		Continent: continent,
		Elevation: elevation,
	}, nil
}

// NationalParkLocation is one entry in the national park site list.
type NationalParkLocation struct {
	ID   int
	Name string
}

// DecodeNationalParkLocation builds a NationalParkLocation from one
// site-list entry.
func DecodeNationalParkLocation(m Payload) (NationalParkLocation, error) {
	id, err := intField(m, "id")
	if err != nil {
		return NationalParkLocation{}, err
	}
	name, err := stringField(m, "name")
	if err != nil {
		return NationalParkLocation{}, err
	}
	return NationalParkLocation{ID: id, Name: name}, nil
}

// RegionalForecastLocation is one entry in the regional forecast site list,
// whose feed prefixes attribute keys with "@".
type RegionalForecastLocation struct {
	ID   int
	Name string
}

// DecodeRegionalForecastLocation builds a RegionalForecastLocation from one
// site-list entry.
func DecodeRegionalForecastLocation(m Payload) (RegionalForecastLocation, error) {
	id, err := intField(m, "@id")
	if err != nil {
		return RegionalForecastLocation{}, err
	}
	name, err := stringField(m, "@name")
	if err != nil {
		return RegionalForecastLocation{}, err
	}
	return RegionalForecastLocation{ID: id, Name: name}, nil
}

// MountainAreaLocation is one entry in the mountain area site list. Its IDs
// are short area codes, not numbers.
type MountainAreaLocation struct {
	ID   string
	Name string
}

// DecodeMountainAreaLocation builds a MountainAreaLocation from one
// site-list entry.
func DecodeMountainAreaLocation(m Payload) (MountainAreaLocation, error) {
	id, err := stringField(m, "@id")
	if err != nil {
		return MountainAreaLocation{}, err
	}
	name, err := stringField(m, "@name")
	if err != nil {
		return MountainAreaLocation{}, err
	}
	return MountainAreaLocation{ID: id, Name: name}, nil
}
