package domain

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted layouts for client-supplied date strings,
// tried in order. The first layout that parses wins.
var dateLayouts = []string{
	"2006-01-02", // yyyy-MM-dd
	"20060102",   // yyyyMMdd
	"01/02/2006", // MM/dd/yyyy
	"02.01.2006", // dd.MM.yyyy
}

// DateInt encodes a calendar date as an 8-digit YYYYMMDD integer, the at-rest
// representation of registration and payment dates. Time of day is discarded.
func DateInt(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// ParseFlexibleDate parses a client-supplied date string against the accepted
// layouts: yyyy-MM-dd, yyyyMMdd, MM/dd/yyyy, dd.MM.yyyy.
func ParseFlexibleDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
