package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"dubizzle-scraper/extract"
	"dubizzle-scraper/models"
)

type Report struct {
	TotalRecords    int
	PricedRecords   int
	DegradedRecords int
	AveragePrice    float64
	MinPrice        float64
	MaxPrice        float64
	MostExpensive   models.Record
	ByLocation      map[string]int
}

var priceNumberRe = regexp.MustCompile(`[0-9][0-9,\.]*`)

// priceValue parses the numeric part of a resolved price string
// ("350,000", "350000 EGP", "٣٥٠٠٠٠"). Sentinel and unparseable prices
// come back as 0.
func priceValue(price string) float64 {
	if price == "" || price == extract.Sentinel {
		return 0
	}
	m := priceNumberRe.FindString(extract.NormalizeDigits(price))
	if m == "" {
		return 0
	}
	cleaned := make([]byte, 0, len(m))
	for i := 0; i < len(m); i++ {
		if m[i] != ',' {
			cleaned = append(cleaned, m[i])
		}
	}
	v, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil {
		return 0
	}
	return v
}

// GenerateReport computes run statistics over the extracted records.
func GenerateReport(records []models.Record) Report {
	report := Report{
		ByLocation: make(map[string]int),
	}
	report.TotalRecords = len(records)

	var (
		priceSum float64
		maxPrice = -1.0
		minPrice = math.MaxFloat64
	)

	for _, r := range records {
		if r.ResolvedFields == 0 {
			report.DegradedRecords++
		}

		report.ByLocation[locationKey(r.Location)]++

		if v := priceValue(r.Price); v > 0 {
			priceSum += v
			report.PricedRecords++
			if v > maxPrice {
				maxPrice = v
				report.MostExpensive = r
			}
			if v < minPrice {
				minPrice = v
			}
		}
	}

	if report.PricedRecords > 0 {
		report.AveragePrice = priceSum / float64(report.PricedRecords)
		report.MinPrice = minPrice
		report.MaxPrice = maxPrice
	}

	return report
}

func PrintReport(report Report) {
	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────────────────────┐")
	fmt.Println("│                   Vehicle Listings Summary                   │")
	fmt.Println("├───────────────────────────────┬──────────────────────────────┤")
	fmt.Printf("│ %-29s │ %-28d │\n", "Total Records", report.TotalRecords)
	fmt.Printf("│ %-29s │ %-28d │\n", "Records With Price", report.PricedRecords)
	fmt.Printf("│ %-29s │ %-28d │\n", "Degraded Records", report.DegradedRecords)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Average Price", report.AveragePrice)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Minimum Price", report.MinPrice)
	fmt.Printf("│ %-29s │ %-28.0f │\n", "Maximum Price", report.MaxPrice)
	fmt.Println("└───────────────────────────────┴──────────────────────────────┘")

	if report.MostExpensive.Link != "" {
		fmt.Println()
		fmt.Printf("Most expensive: %s | %s | %s\n",
			truncateText(report.MostExpensive.CarType, 40),
			report.MostExpensive.Price,
			report.MostExpensive.Location)
	}

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Listings per Location                        │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, loc := range sortedLocations(report.ByLocation) {
		fmt.Printf("│ %-44s │ %-13d │\n", truncateText(loc, 44), report.ByLocation[loc])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")
}

func locationKey(location string) string {
	if location == "" || location == extract.Sentinel {
		return "Unknown"
	}
	return location
}

func sortedLocations(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
