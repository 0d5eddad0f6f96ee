package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vanshika/airroute/internal/domain"
)

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	d := Haversine(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 1})
	assert.InDelta(t, 111.19, d, 0.01)
}

func TestHaversineIdenticalPoints(t *testing.T) {
	p := domain.Coordinate{Lat: 42.36429977, Lon: -71.00520325}
	assert.Equal(t, 0.0, Haversine(p, p))
}

func TestHaversineSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Coordinate
	}{
		{"boston-doha", domain.Coordinate{Lat: 42.36429977, Lon: -71.00520325}, domain.Coordinate{Lat: 25.273056, Lon: 51.608056}},
		{"antimeridian", domain.Coordinate{Lat: -17.75, Lon: 179.9}, domain.Coordinate{Lat: -18.1, Lon: -179.8}},
		{"southern", domain.Coordinate{Lat: -33.946111, Lon: 151.177222}, domain.Coordinate{Lat: -37.008056, Lon: 174.791667}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Haversine(tc.a, tc.b), Haversine(tc.b, tc.a))
		})
	}
}

func TestHaversineBostonDoha(t *testing.T) {
	logan := domain.Coordinate{Lat: 42.36429977, Lon: -71.00520325}
	hamad := domain.Coordinate{Lat: 25.273056, Lon: 51.608056}
	assert.InDelta(t, 10469.375, Haversine(logan, hamad), 0.01)
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 111.195, Round3(111.19492664455873))
	assert.Equal(t, 0.0, Round3(0))
}
