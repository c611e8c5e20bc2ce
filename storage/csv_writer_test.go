package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dubizzle-scraper/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cars.csv")
	w := NewCSVWriter(path)

	records := []models.Record{
		{
			Name:        "Ahmed Hassan",
			Phone:       "01012345678",
			Price:       "350,000",
			Location:    "Nasr City, Cairo",
			CarType:     "Sedan",
			Description: "Well maintained, first owner",
			Link:        "https://www.dubizzle.com.eg/ad/a-ID1.html",
		},
		{
			Name:        "-",
			Phone:       "-",
			Price:       "-",
			Location:    "-",
			CarType:     "-",
			Description: "-",
			Link:        "https://www.dubizzle.com.eg/ad/b-ID2.html",
		},
	}

	require.NoError(t, w.Write(records))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"name", "telephone number", "price", "location",
		"type of car", "description", "link of ad",
	}, rows[0])
	assert.Equal(t, "Ahmed Hassan", rows[1][0])
	assert.Equal(t, "https://www.dubizzle.com.eg/ad/b-ID2.html", rows[2][6])
}

func TestCSVWriterEmptyRunStillWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.csv")
	w := NewCSVWriter(path)

	require.NoError(t, w.Write(nil))

	rows := readCSV(t, path)
	require.Len(t, rows, 1, "header only")
}

func TestCSVWriterOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.csv")
	w := NewCSVWriter(path)

	require.NoError(t, w.Write([]models.Record{
		{Name: "first", Link: "https://x/ad/1"},
		{Name: "second", Link: "https://x/ad/2"},
	}))
	require.NoError(t, w.Write([]models.Record{
		{Name: "only", Link: "https://x/ad/3"},
	}))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "only", rows[1][0])
}
