package wttr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

// j1 payload types. Numeric values arrive as strings; see numeric.

type payload struct {
	CurrentCondition []currentCondition `json:"current_condition"`
	NearestArea      []nearestArea      `json:"nearest_area"`
	Weather          []weatherDay       `json:"weather"`
	MoonPhase        *moonPhase         `json:"moon_phase"`
	Astronomy        []astronomy        `json:"astronomy"`
}

type value struct {
	Value string `json:"value"`
}

type currentCondition struct {
	TempC           numeric `json:"temp_C"`
	FeelsLikeC      numeric `json:"FeelsLikeC"`
	Humidity        numeric `json:"humidity"`
	Pressure        numeric `json:"pressure"`
	Visibility      numeric `json:"visibility"`
	WindDirDegree   numeric `json:"winddirDegree"`
	WindSpeedKmph   numeric `json:"windspeedKmph"`
	ObservationTime string  `json:"observation_time"`
	WeatherDesc     []value `json:"weatherDesc"`
}

type nearestArea struct {
	AreaName []value `json:"areaName"`
	Region   []value `json:"region"`
	Country  []value `json:"country"`
}

type weatherDay struct {
	Date      string      `json:"date"`
	MaxTempC  numeric     `json:"maxtempC"`
	MinTempC  numeric     `json:"mintempC"`
	Astronomy []astronomy `json:"astronomy"`
	Hourly    []hourly    `json:"hourly"`
}

type hourly struct {
	Time          numeric `json:"time"`
	TempC         numeric `json:"tempC"`
	WindDirDegree numeric `json:"winddirDegree"`
	WindSpeedKmph numeric `json:"windspeedKmph"`
	PrecipMM      numeric `json:"precipMM"`
	ChanceOfRain  numeric `json:"chanceofrain"`
	WeatherDesc   []value `json:"weatherDesc"`
}

type astronomy struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`

	CivilTwilightBegin        string `json:"civil_twilight_begin"`
	CivilTwilightEnd          string `json:"civil_twilight_end"`
	NauticalTwilightBegin     string `json:"nautical_twilight_begin"`
	NauticalTwilightEnd       string `json:"nautical_twilight_end"`
	AstronomicalTwilightBegin string `json:"astronomical_twilight_begin"`
	AstronomicalTwilightEnd   string `json:"astronomical_twilight_end"`
}

type moonPhase struct {
	AgeOfMoon   string `json:"ageOfMoon"`
	PhaseOfMoon string `json:"phaseofMoon"`
}

// numeric holds the raw text of a j1 numeric field. wttr.in sends strings,
// but a bare JSON number is accepted too, and any other value is kept as
// text so it surfaces as an invalid numeric for that field alone. A nil raw
// means the key was absent or null.
type numeric struct {
	raw *string
}

func (n *numeric) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		n.raw = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	n.raw = &s
	return nil
}

// Decode reads a j1 payload. Only malformed JSON is an error; missing blocks
// are recorded in Report.Problems and bad values in each field's Number.
func Decode(r io.Reader) (domain.Report, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return domain.Report{}, fmt.Errorf("decode j1 payload: %w", err)
	}
	return p.report(), nil
}

func (p payload) report() domain.Report {
	var rep domain.Report

	if len(p.NearestArea) == 0 {
		rep.Problems = append(rep.Problems, domain.MissingField("nearest_area"))
	} else {
		a := p.NearestArea[0]
		rep.Area = first(a.AreaName)
		rep.Region = first(a.Region)
		rep.Country = first(a.Country)
	}

	if len(p.CurrentCondition) == 0 {
		rep.Problems = append(rep.Problems, domain.MissingField("current_condition"))
	} else {
		rep.Current = p.CurrentCondition[0].current()
	}

	if len(p.Weather) == 0 {
		rep.Problems = append(rep.Problems, domain.MissingField("weather"))
	}
	for _, d := range p.Weather {
		rep.Days = append(rep.Days, d.day())
	}

	var dayAstro *astronomy
	if len(p.Weather) > 0 && len(p.Weather[0].Astronomy) > 0 {
		dayAstro = &p.Weather[0].Astronomy[0]
	}

	switch {
	case p.MoonPhase != nil:
		rep.Moon = &domain.Moon{Phase: p.MoonPhase.PhaseOfMoon, Age: p.MoonPhase.AgeOfMoon}
		if dayAstro != nil {
			rep.Moon.Illumination = dayAstro.MoonIllumination
		}
	case dayAstro != nil && dayAstro.MoonPhase != "":
		rep.Moon = &domain.Moon{Phase: dayAstro.MoonPhase, Illumination: dayAstro.MoonIllumination}
	}

	switch {
	case len(p.Astronomy) > 0:
		rep.Astronomy = p.Astronomy[0].toDomain()
	case dayAstro != nil:
		rep.Astronomy = dayAstro.toDomain()
	}

	return rep
}

func (c currentCondition) current() *domain.Current {
	return &domain.Current{
		Temp:      domain.ParseNumber("temp_C", c.TempC.raw),
		FeelsLike: domain.ParseNumber("FeelsLikeC", c.FeelsLikeC.raw),
		Condition: first(c.WeatherDesc),
		Wind: domain.Wind{
			Bearing:  domain.ParseNumber("winddirDegree", c.WindDirDegree.raw),
			SpeedKmh: domain.ParseNumber("windspeedKmph", c.WindSpeedKmph.raw),
		},
		Humidity:   domain.ParseNumber("humidity", c.Humidity.raw),
		Visibility: domain.ParseNumber("visibility", c.Visibility.raw),
		Pressure:   domain.ParseNumber("pressure", c.Pressure.raw),
		ObservedAt: c.ObservationTime,
	}
}

func (d weatherDay) day() domain.ForecastDay {
	day := domain.ForecastDay{
		Date:    d.Date,
		MaxTemp: domain.ParseNumber("maxtempC", d.MaxTempC.raw),
		MinTemp: domain.ParseNumber("mintempC", d.MinTempC.raw),
	}
	for _, h := range d.Hourly {
		day.Hours = append(day.Hours, domain.Hour{
			TimeCode:  domain.ParseNumber("time", h.Time.raw),
			Temp:      domain.ParseNumber("tempC", h.TempC.raw),
			Condition: first(h.WeatherDesc),
			Wind: domain.Wind{
				Bearing:  domain.ParseNumber("winddirDegree", h.WindDirDegree.raw),
				SpeedKmh: domain.ParseNumber("windspeedKmph", h.WindSpeedKmph.raw),
			},
			PrecipMm:     domain.ParseNumber("precipMM", h.PrecipMM.raw),
			ChanceOfRain: domain.ParseNumber("chanceofrain", h.ChanceOfRain.raw),
		})
	}
	return day
}

func (a astronomy) toDomain() *domain.Astronomy {
	return &domain.Astronomy{
		Sunrise:              a.Sunrise,
		Sunset:               a.Sunset,
		Moonrise:             a.Moonrise,
		Moonset:              a.Moonset,
		CivilTwilight:        domain.Interval{Begin: a.CivilTwilightBegin, End: a.CivilTwilightEnd},
		NauticalTwilight:     domain.Interval{Begin: a.NauticalTwilightBegin, End: a.NauticalTwilightEnd},
		AstronomicalTwilight: domain.Interval{Begin: a.AstronomicalTwilightBegin, End: a.AstronomicalTwilightEnd},
	}
}

func first(vs []value) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0].Value
}
