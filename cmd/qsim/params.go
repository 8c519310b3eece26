package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExpr matches coefficient-times-pi forms: pi, 2pi, 2*pi, pi/2, 3*pi/4,
// with an optional leading minus.
var piExpr = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// piForms are the multiples of pi that formatParam renders symbolically.
// Order matters: the first match within 1e-10 wins.
var piForms = []struct {
	value   float64
	display string
}{
	{2 * math.Pi, "2*pi"},
	{math.Pi, "pi"},
	{math.Pi / 2, "pi/2"},
	{math.Pi / 3, "pi/3"},
	{math.Pi / 4, "pi/4"},
	{math.Pi / 6, "pi/6"},
	{math.Pi / 8, "pi/8"},
	{3 * math.Pi / 4, "3*pi/4"},
	{3 * math.Pi / 2, "3*pi/2"},
	{10 * math.Pi, "10*pi"},
}

// parseParamExpr evaluates a demo parameter. Plain float syntax is accepted
// as-is ("3000", "-0.5", "1e-4"); anything else must be a pi expression.
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		return val, true
	}
	return parsePiExpr(strings.ToLower(s))
}

func parsePiExpr(s string) (float64, bool) {
	m := piExpr.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	val := math.Pi
	if m[2] != "" {
		coeff, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		val *= coeff
	}
	if m[3] != "" {
		denom, err := strconv.ParseFloat(m[3], 64)
		if err != nil || denom == 0 {
			return 0, false
		}
		val /= denom
	}
	if m[1] == "-" {
		val = -val
	}
	return val, true
}

// formatParam renders a parameter value, preferring pi notation so that
// edited values round-trip through parseParamExpr.
func formatParam(val float64) string {
	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return fmt.Sprintf("%g", val)
}
