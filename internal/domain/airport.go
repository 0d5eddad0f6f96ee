package domain

// Coordinate is a WGS 84 position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Airport models an airport node in the route network.
type Airport struct {
	ID        int
	Name      string
	City      string
	Country   string
	IATA      string
	Code      string
	Latitude  float64
	Longitude float64
	Neighbors []int
}

// Coordinate returns the airport position.
func (a Airport) Coordinate() Coordinate {
	return Coordinate{Lat: a.Latitude, Lon: a.Longitude}
}
