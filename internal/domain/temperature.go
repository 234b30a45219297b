package domain

// Temperature carries a Celsius reading and its Fahrenheit equivalent.
type Temperature struct {
	Celsius    float64
	Fahrenheit float64
}

// NewTemperature derives Fahrenheit from Celsius exactly once.
func NewTemperature(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

// TemperatureOf converts a decoded Celsius field, passing its error through.
func TemperatureOf(n Number) (Temperature, error) {
	if !n.OK() {
		return Temperature{}, n.Err
	}
	return NewTemperature(n.Value), nil
}

// DisplayCelsius truncates toward zero; the report never rounds.
func (t Temperature) DisplayCelsius() int {
	return int(t.Celsius)
}

// DisplayFahrenheit truncates toward zero.
func (t Temperature) DisplayFahrenheit() int {
	return int(t.Fahrenheit)
}
