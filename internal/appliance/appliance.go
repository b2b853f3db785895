// Package appliance holds the element type of the demo list.
package appliance

import "fmt"

// Appliance is comparable; two appliances are equal when all fields match.
type Appliance struct {
	Name  string
	Power int // watts
	// Consumption is the energy drawn per hour of use, in kWh.
	Consumption float64
}

func New(name string, power int, consumption float64) Appliance {
	return Appliance{Name: name, Power: power, Consumption: consumption}
}

func (a Appliance) Equal(b Appliance) bool { return a == b }

func (a Appliance) String() string {
	return fmt.Sprintf("%s (power: %dW, consumption: %gkWh)", a.Name, a.Power, a.Consumption)
}
