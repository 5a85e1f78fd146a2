package services

import (
	"strings"

	"realestate-chat-api/pkg/models"
)

// FilterRecords keeps rows whose location is in locations (case-insensitive)
// and whose year is in years. Empty filters do not restrict; both filters AND together.
func FilterRecords(ds models.Dataset, locations []string, years []int) models.Dataset {
	if len(locations) == 0 && len(years) == 0 {
		return ds
	}

	locSet := make(map[string]bool, len(locations))
	for _, l := range locations {
		locSet[strings.ToLower(strings.TrimSpace(l))] = true
	}
	yearSet := make(map[int]bool, len(years))
	for _, y := range years {
		yearSet[y] = true
	}

	view := make(models.Dataset, 0, len(ds))
	for _, r := range ds {
		if len(locSet) > 0 && !locSet[strings.ToLower(strings.TrimSpace(r.Location))] {
			continue
		}
		if len(yearSet) > 0 && !yearSet[r.Year] {
			continue
		}
		view = append(view, r)
	}
	return view
}

// rowsForLocation returns the rows of view at location, compared case-insensitively.
func rowsForLocation(view models.Dataset, location string) models.Dataset {
	return FilterRecords(view, []string{location}, nil)
}

func meanPrice(rows models.Dataset) float64 {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rows {
		sum += r.Price
	}
	return sum / float64(len(rows))
}
