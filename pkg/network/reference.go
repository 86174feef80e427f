package network

// ReferenceDefinition is the five city line network A-B-C-D-E where every neighbouring
// pair is joined by one train, one car and one airplane route.
func ReferenceDefinition() Definition {
	return Definition{
		Cities: []CityDefinition{
			{ID: 0, Name: "City A"},
			{ID: 1, Name: "City B"},
			{ID: 2, Name: "City C"},
			{ID: 3, Name: "City D"},
			{ID: 4, Name: "City E"},
		},
		Routes: []RouteDefinition{
			{From: 0, To: 1, Mode: "train", Distance: 100, Cost: 50},
			{From: 0, To: 1, Mode: "car", Distance: 120, Cost: 80},
			{From: 0, To: 1, Mode: "airplane", Distance: 80, Cost: 200},

			{From: 1, To: 2, Mode: "train", Distance: 150, Cost: 70},
			{From: 1, To: 2, Mode: "car", Distance: 130, Cost: 90},
			{From: 1, To: 2, Mode: "airplane", Distance: 100, Cost: 250},

			{From: 2, To: 3, Mode: "train", Distance: 200, Cost: 90},
			{From: 2, To: 3, Mode: "car", Distance: 180, Cost: 120},
			{From: 2, To: 3, Mode: "airplane", Distance: 150, Cost: 300},

			{From: 3, To: 4, Mode: "train", Distance: 120, Cost: 60},
			{From: 3, To: 4, Mode: "car", Distance: 100, Cost: 80},
			{From: 3, To: 4, Mode: "airplane", Distance: 90, Cost: 200},
		},
	}
}

// Reference builds the reference network. It cannot fail.
func Reference() *Network {
	n, err := Build(ReferenceDefinition())
	if err != nil {
		panic(err)
	}
	return n
}
