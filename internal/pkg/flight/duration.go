package flight

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/utils"
)

const durationNotAvailable = "N/A"

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// FormatISODuration renders an ISO-8601 duration such as "PT2H30M" as
// "2 hours 30 minutes". Components carry into larger units, days fold into
// hours and leftover seconds are dropped. Unparsable input is returned
// unchanged.
func FormatISODuration(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "PT" {
		return durationNotAvailable
	}

	match := isoDurationPattern.FindStringSubmatch(value)
	if match == nil || (match[1] == "" && match[2] == "" && match[3] == "" && match[4] == "") {
		return value
	}

	seconds, _, _ := strings.Cut(match[4], ".")

	var total int64

	for _, part := range []struct {
		digits string
		unit   int64
	}{
		{match[1], 24 * 60 * 60},
		{match[2], 60 * 60},
		{match[3], 60},
		{seconds, 1},
	} {
		var ok bool
		if total, ok = addUnits(total, part.digits, part.unit); !ok {
			return value
		}
	}

	return utils.FormatHoursMinutes(total/3600, total%3600/60)
}

// addUnits adds digits*unit to total, reporting false on overflow.
func addUnits(total int64, digits string, unit int64) (int64, bool) {
	if digits == "" {
		return total, true
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n > (math.MaxInt64-total)/unit {
		return 0, false
	}

	return total + n*unit, true
}
