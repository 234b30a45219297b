// Package domain models the weather report rendered by the terminal formatter.
//
// # Data Source
//
// Reports originate from wttr.in's JSON endpoint (`/<location>?format=j1`).
// The payload mirrors the World Weather Online API: every numeric value is
// delivered as a string and every description is wrapped in a
// `[{"value": "..."}]` list. The wttr adapter decodes that payload into a
// [Report]; nothing in this package performs I/O.
//
// # j1 Conventions
//
// Temperatures:
//
//	"temp_C", "tempC", "maxtempC", "mintempC", "FeelsLikeC" are Celsius.
//	The Fahrenheit twins ("temp_F", ...) are ignored; Fahrenheit is derived
//	once from Celsius by [NewTemperature] so both units always agree.
//
// Wind:
//
//	"winddirDegree" is the bearing the wind blows from, 0–359.
//	"windspeedKmph" is km/h and is displayed exactly as delivered.
//
// Time codes:
//
//	Hourly entries carry "time" as HMM/HHMM without padding:
//	"0" = 00:00, "300" = 03:00, "1800" = 18:00. Entries are three hours apart.
//
// Astronomy:
//
//	Each forecast day has an "astronomy" list with sunrise, sunset, moonrise,
//	moonset, "moon_phase" and "moon_illumination". Some mirrors also send
//	top-level "moon_phase" and "astronomy" objects with moon age and twilight
//	times; those take precedence when present.
//
// # Field Problems
//
// Decoding never fails on a single bad value. A numeric field is kept as a
// [Number] whose Err is a [*FieldError] wrapping [ErrMissingField] (key absent
// or empty) or [ErrInvalidNumeric] (not parseable). Missing structural blocks
// (nearest_area, current_condition, weather) are listed in [Report.Problems].
// The formatter turns each problem into a placeholder line or cell marker, so
// a damaged payload still produces a best-effort report.
package domain
