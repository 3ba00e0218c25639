package driver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pricePattern matches the decimal amount inside displayed price text,
// e.g. "$49.99", "49.99 USD" or "$ 1,049.00"
var pricePattern = regexp.MustCompile(`(\d{1,3}(?:,\d{3})+|\d+)(?:\.(\d{1,2}))?`)

// ParsePrice converts displayed price text into minor units (cents). The
// validation engine only sees typed amounts; turning whatever the page
// renders into a number is the driver's job.
func ParsePrice(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("empty price text")
	}

	match := pricePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return 0, fmt.Errorf("no amount found in price text %q", text)
	}

	whole := strings.ReplaceAll(match[1], ",", "")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount in price text %q: %w", text, err)
	}

	cents := units * 100
	if match[2] != "" {
		fraction := match[2]
		if len(fraction) == 1 {
			// "49.9" means 90 cents, not 9
			fraction += "0"
		}
		f, err := strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fraction in price text %q: %w", text, err)
		}
		cents += f
	}

	return cents, nil
}
