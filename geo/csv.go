package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// populationColumns are the header names accepted for the population value,
// in priority order. The first column present on a row with a parsable
// value wins.
var populationColumns = []string{"Population", "population", "POPULATION", "Pop", "pop"}

// ReadRecords reads geolocated population records from CSV data.
//
// The header row must contain Latitude and Longitude columns. Data rows
// whose latitude or longitude fail to parse are dropped; a missing or
// unparsable population value defaults that row's population to 0. Data
// rows never fail the read, only an unreadable or incomplete header does.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	latCol, ok := col["Latitude"]
	if !ok {
		return nil, fmt.Errorf("csv header has no Latitude column")
	}
	lonCol, ok := col["Longitude"]
	if !ok {
		return nil, fmt.Errorf("csv header has no Longitude column")
	}

	popCols := make([]int, 0, len(populationColumns))
	for _, name := range populationColumns {
		if i, ok := col[name]; ok {
			popCols = append(popCols, i)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: drop it and keep going.
			continue
		}
		if latCol >= len(row) || lonCol >= len(row) {
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(row[latCol]), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[lonCol]), 64)
		if err != nil {
			continue
		}

		pop := 0.0
		for _, i := range popCols {
			if i >= len(row) || row[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				continue
			}
			pop = v
			break
		}

		records = append(records, Record{Lat: lat, Lon: lon, Population: pop})
	}
	return records, nil
}

// ReadRecordsFile reads records from a CSV file on disk.
func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", path, err)
	}
	return records, nil
}
