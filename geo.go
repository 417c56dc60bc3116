package datapoint

import "math"

// earthRadiusKm is the mean radius of the Earth.
const earthRadiusKm = 6371.009

// Distance returns the great-circle distance in kilometres between two
// coordinate pairs, by the spherical law of cosines.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlon := math.Abs(lon1-lon2) * math.Pi / 180

	return earthRadiusKm * math.Acos(
		math.Sin(rlat1)*math.Sin(rlat2)+math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlon))
}

// ClosestSite returns the site nearest to the given coordinates. The second
// return value is false when the list is empty.
func ClosestSite(sites []SiteInfo, latitude, longitude float64) (SiteInfo, bool) {
	if len(sites) == 0 {
		return SiteInfo{}, false
	}
	closest := sites[0]
	best := Distance(closest.Latitude, closest.Longitude, latitude, longitude)
	for _, s := range sites[1:] {
		if d := Distance(s.Latitude, s.Longitude, latitude, longitude); d < best {
			best = d
			closest = s
		}
	}
	return closest, true
}
