package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vanshika/airroute/internal/dataset"
)

var (
	airportsHeader = []string{"id", "name", "city", "country", "iata", "icao", "latitude", "longitude"}
	routesHeader   = []string{"airline", "airline_id", "source", "source_id", "destination", "destination_id", "codeshare", "stops", "equipment"}
)

// WriteDataset serializes the dataset into airports.csv and routes.csv under
// the provided directory.
func WriteDataset(ds Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	codes := make(map[int]string, len(ds.Airports))
	airportRows := make([][]string, 0, len(ds.Airports))
	for _, a := range ds.Airports {
		codes[a.ID] = a.IATA
		airportRows = append(airportRows, []string{
			strconv.Itoa(a.ID),
			a.Name,
			a.City,
			a.Country,
			a.IATA,
			a.Code,
			strconv.FormatFloat(a.Latitude, 'f', -1, 64),
			strconv.FormatFloat(a.Longitude, 'f', -1, 64),
		})
	}
	if err := writeCSV(filepath.Join(dir, "airports.csv"), airportsHeader, airportRows); err != nil {
		return err
	}

	routeRows := make([][]string, 0, len(ds.Routes))
	for _, r := range ds.Routes {
		routeRows = append(routeRows, []string{
			"XX",
			"0",
			codes[r.SourceID],
			endpoint(r.SourceID, r.SourceUnresolved),
			codes[r.DestinationID],
			endpoint(r.DestinationID, r.DestinationUnresolved),
			"",
			"0",
			"320",
		})
	}
	return writeCSV(filepath.Join(dir, "routes.csv"), routesHeader, routeRows)
}

func endpoint(id int, unresolved bool) string {
	if unresolved {
		return dataset.NotApplicable
	}
	return strconv.Itoa(id)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows for %s: %w", path, err)
	}
	return nil
}
