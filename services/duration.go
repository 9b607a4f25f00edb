package services

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts a user-entered duration string into canonical
// seconds. Accepted forms: "H+:MM:SS" (hours may exceed two digits,
// missing trailing components count as 0) or a plain number of seconds.
// Malformed input yields 0 so a single bad record cannot poison an
// aggregation pass.
func ParseDuration(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		var h, m, sec int
		if len(parts) > 0 {
			h = atoiOrZero(parts[0])
		}
		if len(parts) > 1 {
			m = atoiOrZero(parts[1])
		}
		if len(parts) > 2 {
			sec = atoiOrZero(parts[2])
		}
		total := h*3600 + m*60 + sec
		if total < 0 {
			return 0
		}
		return total
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("invalid duration %q, counting as 0", raw)
		return 0
	}
	return SecondsFromNumber(n)
}

// SecondsFromNumber is the explicit seconds-based numeric entry point.
func SecondsFromNumber(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0
	}
	return int(math.Round(n))
}

// SecondsFromHours is the explicit hours-based numeric entry point.
func SecondsFromHours(h float64) int {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return 0
	}
	return int(math.Round(h * 3600))
}

// FormatDuration renders seconds as zero-padded "HH:MM:SS". Hours grow
// past two digits as needed; non-positive input renders "00:00:00".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "00:00:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
