package present

import (
	"math"
	"strconv"
)

// NotAvailable is shown for values the backend did not provide.
const NotAvailable = "N/A"

// formatNumber prints v in its shortest round-trip form: 2, 87.5,
// 33.33333333333333.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return formatNumber(v) + "%"
}

// truthy formats *v with suffix when it is present and non-zero.
func truthy(v *float64, suffix string, zeroIsMeasured bool) string {
	if v == nil || math.IsNaN(*v) {
		return NotAvailable
	}
	if *v == 0 && !zeroIsMeasured {
		return NotAvailable
	}
	return formatNumber(*v) + suffix
}

// defined formats *v whenever it is present, zero included.
func defined(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}
