package domain

// Wind is the wind at a point in time. Bearing may be missing; the speed is
// kept exactly as the source delivered it.
type Wind struct {
	Bearing  Number
	SpeedKmh Number
}

// Current holds the observed conditions.
type Current struct {
	Temp       Number
	FeelsLike  Number
	Condition  string
	Wind       Wind
	Humidity   Number
	Visibility Number
	Pressure   Number
	ObservedAt string
}

// Hour is one three-hourly forecast slot.
type Hour struct {
	TimeCode     Number
	Temp         Number
	Wind         Wind
	PrecipMm     Number
	ChanceOfRain Number
	Condition    string
}

// ForecastDay is one day of forecast with its hourly slots.
type ForecastDay struct {
	Date    string
	MaxTemp Number
	MinTemp Number
	Hours   []Hour
}

// Moon describes the moon phase for the report date.
type Moon struct {
	Phase        string
	Illumination string
	Age          string
}

// Interval is a begin/end pair of local clock times, e.g. "06:12 AM".
type Interval struct {
	Begin string
	End   string
}

// Astronomy carries sun and moon rise/set times and twilight intervals.
// Twilight intervals are empty when the source only supplies per-day data.
type Astronomy struct {
	Sunrise              string
	Sunset               string
	Moonrise             string
	Moonset              string
	CivilTwilight        Interval
	NauticalTwilight     Interval
	AstronomicalTwilight Interval
}

// Report is a complete decoded weather report. Current, Moon and Astronomy
// are nil when the source omitted them; Problems lists structural fields the
// source was missing.
type Report struct {
	Area      string
	Region    string
	Country   string
	Current   *Current
	Days      []ForecastDay
	Moon      *Moon
	Astronomy *Astronomy
	Problems  []error
}

// Location joins the non-empty area parts with ", ".
func (r Report) Location() string {
	out := ""
	for _, part := range []string{r.Area, r.Region, r.Country} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}

// WithDays returns a copy limited to the first n forecast days.
// A negative n keeps every day.
func (r Report) WithDays(n int) Report {
	if n < 0 || n >= len(r.Days) {
		return r
	}
	r.Days = r.Days[:n:n]
	return r
}

// FieldErrors collects Problems plus the error of every numeric field that
// failed to decode.
func (r Report) FieldErrors() []error {
	errs := append([]error(nil), r.Problems...)
	add := func(ns ...Number) {
		for _, n := range ns {
			if n.Err != nil {
				errs = append(errs, n.Err)
			}
		}
	}
	if c := r.Current; c != nil {
		add(c.Temp, c.FeelsLike, c.Wind.Bearing, c.Wind.SpeedKmh, c.Humidity, c.Visibility, c.Pressure)
	}
	for _, d := range r.Days {
		add(d.MaxTemp, d.MinTemp)
		for _, h := range d.Hours {
			add(h.TimeCode, h.Temp, h.Wind.Bearing, h.Wind.SpeedKmh, h.PrecipMm, h.ChanceOfRain)
		}
	}
	return errs
}
