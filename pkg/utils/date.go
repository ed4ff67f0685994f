package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateRange gera a lista de dias entre start e end, inclusive. Retorna erro
// quando a data de início é posterior à de fim.
func DateRange(start, end time.Time) ([]time.Time, error) {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)

	if start.After(end) {
		return nil, fmt.Errorf("data de início %s posterior à data de fim %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates, nil
}
