package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var errInvalidID = errors.New("invalid id")

func parseIDParam(value string) (int64, error) {
	value = strings.TrimSpace(value)
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, errInvalidID
	}
	return parsed, nil
}

// parseDateParam maps a blank value to absent, otherwise expects YYYY-MM-DD.
func parseDateParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalString maps a blank field to absent rather than empty string.
func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
