// Package models defines the payloads studydash reads from the backend API.
//
// Optional scalars are pointers so that "absent" (missing or null in the
// JSON body) stays distinguishable from a zero measurement.
package models
