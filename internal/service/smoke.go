package service

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const separator = "--------------------------"

// SmokePairs are the fixed lookups run by SmokeTest. They cover a long-haul
// route in both directions, the same airport, and unknown codes.
var SmokePairs = []Pair{
	{Source: "KBOS", Destination: "OTHH"},
	{Source: "OTHH", Destination: "KBOS"},
	{Source: "KBOS", Destination: "KBOS"},
	{Source: "VABB", Destination: "OTHH"},
	{Source: "KSFO", Destination: "VABB"},
	{Source: "fsgfdsf", Destination: "kjadkjakd"},
}

// SmokeTest runs SmokePairs and writes each result framed by separators.
func (s *FlightService) SmokeTest(ctx context.Context, w io.Writer) error {
	for _, pair := range SmokePairs {
		res, err := s.Lookup(ctx, pair.Source, pair.Destination)
		if err != nil {
			return err
		}
		if err := WriteResult(w, res); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult prints a result framed by separators, one hop per line.
func WriteResult(w io.Writer, res Result) error {
	var b strings.Builder
	b.WriteString(separator + "\n")
	for _, e := range res.Path {
		fmt.Fprintf(&b, "ID:%d -> ID:%d\n", e.ID, e.ParentID)
	}
	b.WriteString(res.Message() + "\n")
	b.WriteString(separator + "\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
