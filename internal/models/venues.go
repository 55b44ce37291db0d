package models

type VenueType string

const (
	VenueHall VenueType = "hall"
	VenueRoom VenueType = "room"
)

// Hall is a banquet hall booked for a single event day.
type Hall struct {
	ID          int64    `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Capacity    int      `json:"capacity" bson:"capacity"`
	Price       float64  `json:"price" bson:"price"` // per day
	Image       string   `json:"image" bson:"image"`
	Amenities   []string `json:"amenities" bson:"amenities"`
	Description string   `json:"description" bson:"description"`
}

// Room is a guest room booked per night.
type Room struct {
	ID          int64    `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Type        string   `json:"type" bson:"type"` // room class, e.g. "Suite"
	Price       float64  `json:"price" bson:"price"`
	Image       string   `json:"image" bson:"image"`
	Amenities   []string `json:"amenities" bson:"amenities"`
	Description string   `json:"description" bson:"description"`
}

// MaxRoomGuests bounds the guest selector of a room booking.
const MaxRoomGuests = 4

func (h Hall) Clone() Hall {
	h.Amenities = append([]string(nil), h.Amenities...)
	return h
}

func (r Room) Clone() Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}

// DefaultHalls returns the built-in hall catalog.
func DefaultHalls() []Hall {
	return []Hall{
		{
			ID:          1,
			Name:        "Royal Grand Hall",
			Capacity:    500,
			Price:       50000,
			Image:       "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "Sound System", "Lighting", "Catering", "Parking"},
			Description: "Luxurious hall perfect for grand wedding celebrations",
		},
		{
			ID:          2,
			Name:        "Crystal Banquet",
			Capacity:    300,
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1464207687429-7505649dae38?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "Sound System", "Lighting", "Parking"},
			Description: "Elegant banquet hall for intimate celebrations",
		},
		{
			ID:          3,
			Name:        "Golden Palace",
			Capacity:    800,
			Price:       75000,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "Sound System", "Lighting", "Catering", "Parking", "Decoration"},
			Description: "Premium venue for the most special occasions",
		},
	}
}

// DefaultRooms returns the built-in room catalog.
func DefaultRooms() []Room {
	return []Room{
		{
			ID:          1,
			Name:        "Deluxe Suite",
			Type:        "Suite",
			Price:       5000,
			Image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "WiFi", "TV", "Mini Bar", "Room Service"},
			Description: "Spacious suite with premium amenities",
		},
		{
			ID:          2,
			Name:        "Premium Room",
			Type:        "Premium",
			Price:       3500,
			Image:       "https://images.unsplash.com/photo-1566665797739-1674de7a421a?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "WiFi", "TV", "Room Service"},
			Description: "Comfortable room with modern facilities",
		},
		{
			ID:          3,
			Name:        "Standard Room",
			Type:        "Standard",
			Price:       2500,
			Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?auto=format&fit=crop&w=1000&q=80",
			Amenities:   []string{"AC", "WiFi", "TV"},
			Description: "Cozy room with essential amenities",
		},
	}
}
