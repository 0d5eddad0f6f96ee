// Package dataset reads the airports and routes CSV datasets into raw
// records. It knows nothing about graph semantics.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NotApplicable marks a route endpoint with no airport identifier.
const NotApplicable = "NA"

const (
	datasetAirports = "airports"
	datasetRoutes   = "routes"
)

// Airport columns.
const (
	colAirportID = iota
	colAirportName
	colAirportCity
	colAirportCountry
	colAirportIATA
	colAirportCode
	colAirportLatitude
	colAirportLongitude
)

// Route columns, OpenFlights layout.
const (
	colRouteSourceID      = 3
	colRouteDestinationID = 5
)

// ErrShortRow indicates a row without enough columns for the required fields.
var ErrShortRow = errors.New("row has too few columns")

// AirportRecord is one parsed row of the airports dataset.
type AirportRecord struct {
	ID        int
	Name      string
	City      string
	Country   string
	IATA      string
	Code      string
	Latitude  float64
	Longitude float64
}

// RouteRecord is one parsed row of the routes dataset.
type RouteRecord struct {
	SourceID      int
	DestinationID int
}

// ParseError reports the dataset row and column that failed to parse.
// Row numbers are 1-based and count the header.
type ParseError struct {
	Dataset string
	Row     int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s row %d column %d: %v", e.Dataset, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadAirports opens and reads the airports dataset at path.
func LoadAirports(path string) ([]AirportRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airports dataset: %w", err)
	}
	defer file.Close()
	return ReadAirports(file)
}

// LoadRoutes opens and reads the routes dataset at path.
func LoadRoutes(path string) ([]RouteRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routes dataset: %w", err)
	}
	defer file.Close()
	return ReadRoutes(file)
}

// ReadAirports parses airport rows. On a parse failure it returns the rows
// read so far together with a *ParseError.
func ReadAirports(r io.Reader) ([]AirportRecord, error) {
	var airports []AirportRecord
	err := readRows(r, datasetAirports, func(row int, fields []string) error {
		if len(fields) <= colAirportLongitude {
			return &ParseError{Dataset: datasetAirports, Row: row, Column: len(fields), Err: ErrShortRow}
		}

		id, err := parseInt(datasetAirports, row, colAirportID, fields)
		if err != nil {
			return err
		}
		lat, err := parseFloat(datasetAirports, row, colAirportLatitude, fields)
		if err != nil {
			return err
		}
		lon, err := parseFloat(datasetAirports, row, colAirportLongitude, fields)
		if err != nil {
			return err
		}

		airports = append(airports, AirportRecord{
			ID:        id,
			Name:      fields[colAirportName],
			City:      fields[colAirportCity],
			Country:   fields[colAirportCountry],
			IATA:      strings.TrimSpace(fields[colAirportIATA]),
			Code:      strings.TrimSpace(fields[colAirportCode]),
			Latitude:  lat,
			Longitude: lon,
		})
		return nil
	})
	return airports, err
}

// ReadRoutes parses route rows, skipping rows where either endpoint is NA.
// On a parse failure it returns the rows read so far together with a
// *ParseError.
func ReadRoutes(r io.Reader) ([]RouteRecord, error) {
	var routes []RouteRecord
	err := readRows(r, datasetRoutes, func(row int, fields []string) error {
		if len(fields) <= colRouteDestinationID {
			return &ParseError{Dataset: datasetRoutes, Row: row, Column: len(fields), Err: ErrShortRow}
		}
		if fields[colRouteSourceID] == NotApplicable || fields[colRouteDestinationID] == NotApplicable {
			return nil
		}

		src, err := parseInt(datasetRoutes, row, colRouteSourceID, fields)
		if err != nil {
			return err
		}
		dst, err := parseInt(datasetRoutes, row, colRouteDestinationID, fields)
		if err != nil {
			return err
		}

		routes = append(routes, RouteRecord{SourceID: src, DestinationID: dst})
		return nil
	})
	return routes, err
}

func readRows(r io.Reader, dataset string, fn func(row int, fields []string) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	row := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		row++
		if err != nil {
			return fmt.Errorf("read %s row %d: %w", dataset, row, err)
		}
		if row == 1 {
			continue
		}
		if err := fn(row, fields); err != nil {
			return err
		}
	}
}

func parseInt(dataset string, row, col int, fields []string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(fields[col]))
	if err != nil {
		return 0, &ParseError{Dataset: dataset, Row: row, Column: col, Err: err}
	}
	return v, nil
}

func parseFloat(dataset string, row, col int, fields []string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[col]), 64)
	if err != nil {
		return 0, &ParseError{Dataset: dataset, Row: row, Column: col, Err: err}
	}
	return v, nil
}
