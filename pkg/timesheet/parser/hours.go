package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HoursPolicy decides which numeric hour values a sheet may carry.
type HoursPolicy string

const (
	// HoursAny accepts any finite value, including corrections below zero.
	HoursAny HoursPolicy = "any"
	// HoursNonNegative rejects values below zero.
	HoursNonNegative HoursPolicy = "non-negative"
	// HoursPositive rejects zero and negative values.
	HoursPositive HoursPolicy = "positive"
)

// ParseHoursPolicy maps a policy name to a HoursPolicy.
func ParseHoursPolicy(s string) (HoursPolicy, error) {
	switch p := HoursPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", HoursAny:
		return HoursAny, nil
	case HoursNonNegative, HoursPositive:
		return p, nil
	}
	return "", fmt.Errorf("invalid hours policy: %s (must be any, non-negative, or positive)", s)
}

// Check validates h against the policy.
func (p HoursPolicy) Check(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return errors.New("hours must be finite")
	}
	switch p {
	case HoursNonNegative:
		if h < 0 {
			return errors.New("negative hours not allowed")
		}
	case HoursPositive:
		if h <= 0 {
			return errors.New("hours must be positive")
		}
	}
	return nil
}

// ParseHours parses a raw hours cell and applies the policy.
func ParseHours(raw string, policy HoursPolicy) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ParseError{Field: "hours", Value: raw, Err: errors.New("not a number")}
	}
	if err := policy.Check(h); err != nil {
		return 0, &ParseError{Field: "hours", Value: raw, Err: err}
	}
	return h, nil
}

// FormatHours renders hours in shortest form with at least one fractional
// digit, e.g. 5.0 or 2.25.
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
