package service

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// now is replaced in tests.
var now = time.Now

func today() string {
	return now().Format(dateLayout)
}

// normalizeDate defaults an empty date to today and rejects anything that is
// not YYYY-MM-DD.
func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return today(), nil
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dateLayout), nil
}
