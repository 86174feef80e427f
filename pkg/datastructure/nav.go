package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// City is a node of the network. IDs are dense and assigned by whoever builds the network,
// so a registry of cities is just a slice indexed by ID.
type City struct {
	ID       int32       `json:"id"`
	Name     string      `json:"name"`
	Location *Coordinate `json:"location,omitempty"`
}

func NewCity(id int32, name string) City {
	return City{
		ID:   id,
		Name: name,
	}
}

func NewCityWithLocation(id int32, name string, lat, lon float64) City {
	loc := NewCoordinate(lat, lon)
	return City{
		ID:       id,
		Name:     name,
		Location: &loc,
	}
}

func (c City) HasLocation() bool {
	return c.Location != nil
}
