// Command mkdataset converts a raw GeoNames tab-separated dump (the
// allCountries.txt layout) into the cleaned CSV the viewer consumes:
// City,Latitude,Longitude,Population with one row per populated place.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// allCountries.txt field offsets.
const (
	fieldName       = 1
	fieldLatitude   = 4
	fieldLongitude  = 5
	fieldPopulation = 14
	minFields       = 15
)

type place struct {
	name       string
	lat, lon   float64
	population float64
}

// parseLine extracts a place from one dump line. ok is false for rows
// without usable coordinates; a bad population column degrades to 0 the
// same way the viewer's ingestion does.
func parseLine(line string) (place, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return place{}, false
	}

	lat, err := strconv.ParseFloat(fields[fieldLatitude], 64)
	if err != nil {
		return place{}, false
	}
	lon, err := strconv.ParseFloat(fields[fieldLongitude], 64)
	if err != nil {
		return place{}, false
	}

	pop := 0.0
	if v, err := strconv.ParseFloat(fields[fieldPopulation], 64); err == nil {
		pop = v
	}

	return place{
		name:       fields[fieldName],
		lat:        lat,
		lon:        lon,
		population: pop,
	}, true
}

func convert(inPath, outPath string, minPopulation float64) (kept, dropped int, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open dump %q: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("create output %q: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"City", "Latitude", "Longitude", "Population"}); err != nil {
		return 0, 0, fmt.Errorf("write header: %w", err)
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for sc.Scan() {
		p, ok := parseLine(sc.Text())
		if !ok || p.population < minPopulation {
			dropped++
			continue
		}
		row := []string{
			p.name,
			strconv.FormatFloat(p.lat, 'f', -1, 64),
			strconv.FormatFloat(p.lon, 'f', -1, 64),
			strconv.FormatFloat(p.population, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return kept, dropped, fmt.Errorf("write row: %w", err)
		}
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, dropped, fmt.Errorf("read dump: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return kept, dropped, fmt.Errorf("flush output: %w", err)
	}
	return kept, dropped, nil
}

func main() {
	inPath := flag.String("in", "allCountries.txt", "GeoNames tab-separated dump.")
	outPath := flag.String("out", "GeoNames_Cleaned.csv", "Cleaned CSV output path.")
	minPop := flag.Float64("min-population", 0, "Drop places below this population.")
	flag.Parse()

	kept, dropped, err := convert(*inPath, *outPath, *minPop)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d places to %s (%d rows dropped)\n", kept, *outPath, dropped)
}
