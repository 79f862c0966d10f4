// Package present turns API payloads into display-ready values: formatted
// stat cards with "N/A" fallbacks, bar widths, and signed deltas.
//
// Everything here is a pure function of its inputs.
package present
