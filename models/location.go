package models

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within latitude [-90,90] and longitude [-180,180].
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Location is a coordinate with the name shown to the user. It is replaced, never updated in place.
type Location struct {
	Coordinate  Coordinate `json:"coordinate"`
	DisplayName string     `json:"displayName"`
}
