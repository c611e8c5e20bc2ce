package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dubizzle-scraper/models"
)

func TestPriceValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"350,000", 350000},
		{"350000 EGP", 350000},
		{"٣٥٠٠٠٠", 350000},
		{"-", 0},
		{"", 0},
		{"call for price", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, priceValue(tt.input), "input %q", tt.input)
	}
}

func TestGenerateReport(t *testing.T) {
	records := []models.Record{
		{Price: "350,000", Location: "Nasr City, Cairo", ResolvedFields: 5},
		{Price: "120,000 EGP", Location: "Nasr City, Cairo", ResolvedFields: 3},
		{Price: "-", Location: "-", ResolvedFields: 0},
	}

	report := GenerateReport(records)

	assert.Equal(t, 3, report.TotalRecords)
	assert.Equal(t, 2, report.PricedRecords)
	assert.Equal(t, 1, report.DegradedRecords)
	assert.Equal(t, 120000.0, report.MinPrice)
	assert.Equal(t, 350000.0, report.MaxPrice)
	assert.Equal(t, 235000.0, report.AveragePrice)
	assert.Equal(t, 2, report.ByLocation["Nasr City, Cairo"])
	assert.Equal(t, 1, report.ByLocation["Unknown"])
	assert.Equal(t, "350,000", report.MostExpensive.Price)
}

func TestGenerateReportEmpty(t *testing.T) {
	report := GenerateReport(nil)
	assert.Equal(t, 0, report.TotalRecords)
	assert.Equal(t, 0.0, report.AveragePrice)
	assert.Empty(t, report.ByLocation)
}
