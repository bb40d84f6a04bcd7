package models

// Location holds the structure for a dealership location
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// Locations returns the fixed set of dealership locations. They are not
// persisted, every call regenerates the same four records.
func Locations() []Location {
	return []Location{
		{
			ID:      "loc1",
			Name:    "Downtown Showroom",
			Address: "123 Main Street",
			City:    "New York",
			Phone:   "+1 (555) 123-4567",
		},
		{
			ID:      "loc2",
			Name:    "Westside Auto Center",
			Address: "456 West Avenue",
			City:    "Los Angeles",
			Phone:   "+1 (555) 234-5678",
		},
		{
			ID:      "loc3",
			Name:    "North Point Dealership",
			Address: "789 North Road",
			City:    "Chicago",
			Phone:   "+1 (555) 345-6789",
		},
		{
			ID:      "loc4",
			Name:    "South Bay Motors",
			Address: "321 South Boulevard",
			City:    "Miami",
			Phone:   "+1 (555) 456-7890",
		},
	}
}
