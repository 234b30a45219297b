package wttr

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-cli/internal/domain"
)

func loadFixture(t *testing.T, name string) domain.Report {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	rep, err := Decode(f)
	require.NoError(t, err)
	return rep
}

func TestDecode_Fixture(t *testing.T) {
	rep := loadFixture(t, "oslo.json")

	assert.Empty(t, rep.Problems)
	assert.Equal(t, "Oslo", rep.Area)
	assert.Equal(t, "Oslo", rep.Region)
	assert.Equal(t, "Norway", rep.Country)

	require.NotNil(t, rep.Current)
	cur := rep.Current
	assert.Equal(t, 0.0, cur.Temp.Value)
	assert.Equal(t, -3.0, cur.FeelsLike.Value)
	assert.Equal(t, "Partly cloudy", cur.Condition)
	assert.Equal(t, 350.0, cur.Wind.Bearing.Value)
	assert.Equal(t, "15", cur.Wind.SpeedKmh.Raw)
	assert.Equal(t, "81", cur.Humidity.Raw)
	assert.Equal(t, "09:12 AM", cur.ObservedAt)

	require.Len(t, rep.Days, 2)
	day := rep.Days[0]
	assert.Equal(t, "2024-05-01", day.Date)
	assert.Equal(t, -15.5, day.MinTemp.Value)
	require.Len(t, day.Hours, 2)
	assert.Equal(t, 300.0, day.Hours[1].TimeCode.Value)
	assert.ErrorIs(t, day.Hours[1].Temp.Err, domain.ErrInvalidNumeric)
	assert.True(t, day.Hours[1].Wind.Bearing.IsMissing())
	assert.Equal(t, "95", day.Hours[1].ChanceOfRain.Raw)
	assert.Empty(t, rep.Days[1].Hours)

	require.NotNil(t, rep.Moon)
	assert.Equal(t, domain.Moon{Phase: "Waxing Gibbous", Illumination: "78"}, *rep.Moon)

	require.NotNil(t, rep.Astronomy)
	assert.Equal(t, "05:01 AM", rep.Astronomy.Sunrise)
	assert.Equal(t, "02:14 PM", rep.Astronomy.Moonrise)
	assert.Empty(t, rep.Astronomy.CivilTwilight)
}

func TestDecode_TopLevelMoonAndAstronomy(t *testing.T) {
	body := `{
		"nearest_area": [{"areaName": [{"value": "Reykjavik"}]}],
		"current_condition": [{"temp_C": "2", "weatherDesc": [{"value": "Mist"}]}],
		"weather": [{"date": "2024-06-21", "astronomy": [{"moon_illumination": "99", "moon_phase": "Full Moon"}]}],
		"moon_phase": {"ageOfMoon": "14", "phaseofMoon": "Full Moon"},
		"astronomy": [{
			"sunrise": "02:55 AM", "sunset": "12:03 AM",
			"civil_twilight_begin": "n/a", "civil_twilight_end": "n/a",
			"nautical_twilight_begin": "n/a", "nautical_twilight_end": "n/a",
			"astronomical_twilight_begin": "n/a", "astronomical_twilight_end": "n/a"
		}]
	}`

	rep, err := Decode(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, &domain.Moon{Phase: "Full Moon", Illumination: "99", Age: "14"}, rep.Moon)
	require.NotNil(t, rep.Astronomy)
	assert.Equal(t, "02:55 AM", rep.Astronomy.Sunrise)
	assert.Equal(t, domain.Interval{Begin: "n/a", End: "n/a"}, rep.Astronomy.CivilTwilight)

	cur := rep.Current
	assert.True(t, cur.Humidity.IsMissing())
	assert.EqualError(t, cur.Pressure.Err, "missing field pressure")
}

func TestDecode_MissingBlocks(t *testing.T) {
	rep, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)

	require.Len(t, rep.Problems, 3)
	assert.EqualError(t, rep.Problems[0], "missing field nearest_area")
	assert.EqualError(t, rep.Problems[1], "missing field current_condition")
	assert.EqualError(t, rep.Problems[2], "missing field weather")
	assert.Nil(t, rep.Current)
	assert.Nil(t, rep.Moon)
	assert.Nil(t, rep.Astronomy)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("Unknown location; please try ~52.52,13.41"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode j1 payload")
}

func TestDecode_NonStringNumerics(t *testing.T) {
	payload := `{
		"current_condition": [{
			"temp_C": 5,
			"FeelsLikeC": -2.5,
			"humidity": true,
			"pressure": null,
			"visibility": {"km": 10},
			"windspeedKmph": "12"
		}],
		"weather": [{"date": "2024-05-01", "maxtempC": 9, "mintempC": "1",
			"hourly": [{"time": 300, "tempC": [4]}]}]
	}`

	rep, err := Decode(strings.NewReader(payload))
	require.NoError(t, err)

	cur := rep.Current
	require.NotNil(t, cur)
	assert.True(t, cur.Temp.OK())
	assert.Equal(t, "5", cur.Temp.Raw)
	assert.InDelta(t, -2.5, cur.FeelsLike.Value, 0)
	assert.ErrorIs(t, cur.Humidity.Err, domain.ErrInvalidNumeric)
	assert.True(t, cur.Pressure.IsMissing())
	assert.ErrorIs(t, cur.Visibility.Err, domain.ErrInvalidNumeric)
	assert.True(t, cur.Wind.Bearing.IsMissing())
	assert.Equal(t, "12", cur.Wind.SpeedKmh.Raw)

	require.Len(t, rep.Days, 1)
	assert.InDelta(t, 9, rep.Days[0].MaxTemp.Value, 0)
	require.Len(t, rep.Days[0].Hours, 1)
	assert.InDelta(t, 300, rep.Days[0].Hours[0].TimeCode.Value, 0)
	assert.ErrorIs(t, rep.Days[0].Hours[0].Temp.Err, domain.ErrInvalidNumeric)
}
