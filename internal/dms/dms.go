// Package dms converts between directional degree-minute-second tokens
// (N433604, E0765618) and signed decimal degrees.
package dms

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis selects the token layout: latitude carries two degree digits,
// longitude three.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

const (
	latWidth = 6 // DDMMSS
	lonWidth = 7 // DDDMMSS

	// Guards the integer truncation below against float error, so an
	// exact DMS value never loses a whole second on re-encode.
	truncGuard = 1e-9
)

// Decode parses a directional DMS token into signed decimal degrees.
// The leading letter picks hemisphere and axis (N/S latitude, E/W
// longitude). Digit strings shorter than the fixed width are left-padded
// with zeros rather than rejected, so truncated source data still resolves.
func Decode(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return 0, fmt.Errorf("dms: token %q too short", token)
	}

	dir := token[0]
	digits := strings.TrimSpace(token[1:])

	width, degDigits := latWidth, 2
	switch dir {
	case 'N', 'S':
	case 'E', 'W':
		width, degDigits = lonWidth, 3
	default:
		return 0, fmt.Errorf("dms: unknown direction %q", string(dir))
	}

	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}

	deg, err := strconv.Atoi(digits[:degDigits])
	if err != nil {
		return 0, fmt.Errorf("dms: bad degrees in %q: %w", token, err)
	}
	min, err := strconv.Atoi(digits[degDigits : degDigits+2])
	if err != nil {
		return 0, fmt.Errorf("dms: bad minutes in %q: %w", token, err)
	}
	sec, err := strconv.Atoi(digits[degDigits+2 : degDigits+4])
	if err != nil {
		return 0, fmt.Errorf("dms: bad seconds in %q: %w", token, err)
	}

	dec := float64(deg) + float64(min)/60 + float64(sec)/3600
	if dir == 'S' || dir == 'W' {
		dec = -dec
	}

	return dec, nil
}

// Encode renders decimal degrees as a fixed-width directional token.
// Seconds are truncated, not rounded, matching the textual reports the
// decoder was calibrated against.
func Encode(decimal float64, axis Axis) string {
	positive := decimal >= 0
	decimal = math.Abs(decimal)

	deg := int(decimal + truncGuard)
	minFloat := (decimal - float64(deg)) * 60
	min := int(minFloat + truncGuard)
	sec := int((minFloat-float64(min))*60 + truncGuard)

	if axis == Latitude {
		dir := "N"
		if !positive {
			dir = "S"
		}
		return fmt.Sprintf("%s%02d%02d%02d", dir, deg, min, sec)
	}

	dir := "E"
	if !positive {
		dir = "W"
	}
	return fmt.Sprintf("%s%03d%02d%02d", dir, deg, min, sec)
}
