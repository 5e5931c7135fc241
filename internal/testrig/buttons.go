package testrig

import (
	"fmt"

	"smartchess/hal"
)

// Buttons returns n interrupt-capable virtual pins, released, plus the same pins as
// hal.GPIOPin for constructors.
func Buttons(n int) ([]*hal.VirtualPin, []hal.GPIOPin) {
	pins := make([]*hal.VirtualPin, n)
	gpio := make([]hal.GPIOPin, n)
	for i := range pins {
		p := hal.NewVirtualPin(fmt.Sprintf("BTN%d", i+1), hal.GPIOCapInput|hal.GPIOCapPullUp|hal.GPIOCapInterrupt)
		_ = p.Configure(hal.GPIOModeInput, hal.GPIOPullUp)
		pins[i] = p
		gpio[i] = p
	}
	return pins, gpio
}
