package booking

import "fmt"

// Prices are whole US dollars. One-time clean-ups are a single charge;
// regular service is billed monthly.
const oneTimePrice = 150

// Monthly price by frequency and dog count (1..3).
var regularPrices = map[Frequency][3]int{
	FrequencyWeekly:      {80, 100, 120},
	FrequencyTwiceWeekly: {100, 120, 140},
}

// Price returns the charge for an offering. The table is the only source of
// prices; nothing customer-supplied ever feeds into it.
//
// One-time service costs the same regardless of dog count and ignores
// frequency. Regular service requires a valid frequency.
func Price(service ServiceType, dogs int, frequency Frequency) (int, error) {
	if dogs < 1 || dogs > 3 {
		return 0, fmt.Errorf("%w: dogs must be between 1 and 3, got %d", ErrInvalidOffering, dogs)
	}

	switch service {
	case ServiceOneTime:
		return oneTimePrice, nil
	case ServiceRegular:
		prices, ok := regularPrices[frequency]
		if !ok {
			return 0, fmt.Errorf("%w: regular service requires a frequency", ErrInvalidOffering)
		}
		return prices[dogs-1], nil
	default:
		return 0, fmt.Errorf("%w: unknown service type %q", ErrInvalidOffering, service)
	}
}

// Summary builds the display label used on the confirmation page and in
// emails, e.g. "Twice Weekly Service (2 Dogs)".
func Summary(service ServiceType, frequency Frequency, dogs int) string {
	var label string
	switch {
	case service == ServiceOneTime:
		label = "One-Time Yard Clean-Up"
	case frequency == FrequencyWeekly:
		label = "Weekly Service"
	default:
		label = "Twice Weekly Service"
	}

	unit := "Dogs"
	if dogs == 1 {
		unit = "Dog"
	}
	return fmt.Sprintf("%s (%d %s)", label, dogs, unit)
}

// PriceLabel formats a price with its billing cadence, e.g. "$150" or
// "$100/month".
func PriceLabel(service ServiceType, price int) string {
	if service == ServiceOneTime {
		return fmt.Sprintf("$%d", price)
	}
	return fmt.Sprintf("$%d/month", price)
}
