package datefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var errValueOutOfRange = errors.New("value out of representable range")

// isNilValue reports the inputs that short circuit to an empty result.
func isNilValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *time.Time:
		return v == nil
	default:
		return false
	}
}

// toTime coerces a supported value into a time.Time. Parse failures wrap
// ErrInvalidArgument; numbers that cannot be represented return
// errValueOutOfRange so the caller can report them as format errors.
func toTime(value any, loc *time.Location) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		return *v, nil
	case int:
		return time.Unix(int64(v), 0), nil
	case int8:
		return time.Unix(int64(v), 0), nil
	case int16:
		return time.Unix(int64(v), 0), nil
	case int32:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case uint:
		return unixFromUint(uint64(v))
	case uint8:
		return time.Unix(int64(v), 0), nil
	case uint16:
		return time.Unix(int64(v), 0), nil
	case uint32:
		return time.Unix(int64(v), 0), nil
	case uint64:
		return unixFromUint(v)
	case float32:
		return unixFromFloat(float64(v))
	case float64:
		return unixFromFloat(v)
	case string:
		return parseTimeString(v, loc)
	default:
		return time.Time{}, fmt.Errorf("%w: the value %q of type %T is not a date", ErrInvalidArgument, fmt.Sprint(value), value)
	}
}

func unixFromUint(v uint64) (time.Time, error) {
	if v > math.MaxInt64 {
		return time.Time{}, errValueOutOfRange
	}
	return time.Unix(int64(v), 0), nil
}

func unixFromFloat(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, errValueOutOfRange
	}
	sec, frac := math.Modf(v)
	if sec >= math.MaxInt64 || sec <= math.MinInt64 {
		return time.Time{}, errValueOutOfRange
	}
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))), nil
}

// parseTimeString treats digit only strings as Unix seconds and hands
// everything else to dateparse, interpreting zone-less input in loc.
func parseTimeString(value string, loc *time.Location) (time.Time, error) {
	if isDigits(value) {
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: the value %q of type string is invalid. Error: %q", ErrInvalidArgument, value, err.Error())
		}
		return unixFromFloat(seconds)
	}

	if loc == nil {
		loc = time.Local
	}

	parsed, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: the value %q of type string is invalid. Error: %q", ErrInvalidArgument, value, err.Error())
	}
	return parsed, nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
