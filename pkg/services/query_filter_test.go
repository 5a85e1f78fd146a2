package services

import (
	"testing"

	"realestate-chat-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		{Location: "pune", Year: 2020, Price: 100},
		{Location: "pune", Year: 2021, Price: 200},
		{Location: "Mumbai", Year: 2019, Price: 100},
		{Location: "mumbai", Year: 2021, Price: 150},
		{Location: "wakad", Year: 2021, Price: 80},
	}
}

func TestFilterRecordsNoFiltersReturnsDataset(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, ds, FilterRecords(ds, nil, nil))
	assert.Equal(t, ds, FilterRecords(ds, []string{}, []int{}))
}

func TestFilterRecordsLocationsCaseInsensitive(t *testing.T) {
	view := FilterRecords(sampleDataset(), []string{"mumbai"}, nil)

	assert.Len(t, view, 2)
	for _, r := range view {
		assert.Contains(t, []string{"Mumbai", "mumbai"}, r.Location)
	}
}

func TestFilterRecordsYearsAndLocationsCombine(t *testing.T) {
	view := FilterRecords(sampleDataset(), []string{"pune", "mumbai"}, []int{2021})

	assert.Equal(t, models.Dataset{
		{Location: "pune", Year: 2021, Price: 200},
		{Location: "mumbai", Year: 2021, Price: 150},
	}, view)
}

func TestFilterRecordsIsSubset(t *testing.T) {
	ds := sampleDataset()
	filters := []struct {
		locations []string
		years     []int
	}{
		{[]string{"wakad"}, nil},
		{nil, []int{2019, 2020}},
		{[]string{"nowhere"}, nil},
		{[]string{"pune"}, []int{1990}},
	}

	for _, f := range filters {
		view := FilterRecords(ds, f.locations, f.years)
		for _, r := range view {
			assert.Contains(t, ds, r)
		}
	}
}

func TestFilterRecordsEmptyResult(t *testing.T) {
	assert.Empty(t, FilterRecords(sampleDataset(), []string{"pune"}, []int{2019}))
}
