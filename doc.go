// Package datapoint is a client library for the UK Met Office DataPoint API.
//
// It covers the JSON data feeds: site lists, daily and three-hourly site
// forecasts, hourly observations, UK weather extremes, textual regional
// forecasts, mountain area forecasts, and image layer capabilities.
//
// # Wire Conventions
//
// DataPoint serialises everything as JSON translated mechanically from XML,
// which leaves three quirks the decoders in this package normalise away:
//
//   - Elements that may repeat arrive as a list when there are several and as
//     a bare object when there is exactly one. Decoders accept both and
//     always produce slices.
//   - Attribute-derived keys are terse and carry an "@" prefix in some feeds:
//     "T" is temperature, "$" is an element's text content (minutes after
//     midnight in forecast reps), "D" wind direction, "W" weather type,
//     "V" visibility, "U" UV index.
//   - Missing numeric readings are the string "NA" rather than an absent
//     key. These decode to nil pointers, as do genuinely absent optional
//     keys.
//
// Additionally, dates may carry a bare "Z" suffix on a date-only value
// ("2024-03-01Z"), and times of day may be "24:00" for midnight at the end
// of a day; both are accepted.
//
// Day and night forecast values use different keys for the same quantity
// (e.g. "Dm" day maximum versus "Nm" night minimum temperature, "FDm" versus
// "FNm" feels-like). A single rep never carries both, so the decoders read
// whichever is present into one field.
//
// # Basic Usage
//
//	client := datapoint.NewClient(key, 10*time.Second, logger)
//
//	dataDate, forecast, err := client.Forecast(ctx, datapoint.ResolutionThreeHourly, "3840")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, period := range forecast.Periods {
//		for _, rep := range period.ThreeHourlyReps {
//			fmt.Printf("%s +%s: %.0f°C\n", period.Date.Format("2006-01-02"), rep.Offset, rep.Temperature)
//		}
//	}
//
// Visibility is dual-typed on the wire: a metre distance in observations and
// a coded category (GO, VG, EX...) in forecasts. [Visibility] keeps whichever
// form was transmitted and [Visibility.Wire] re-encodes it exactly.
package datapoint
