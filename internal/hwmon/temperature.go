package hwmon

import (
	"fmt"
)

// Temperature is a raw temperature reading in thousandths of a degree
// celsius, as reported by hwmon temp*_input attributes.
type Temperature int

// Celsius converts the raw reading into degrees celsius.
func (t Temperature) Celsius() float64 {
	return float64(t) / 1000.0
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°C", t.Celsius())
}
