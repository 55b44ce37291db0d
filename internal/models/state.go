package models

// State is the whole persisted snapshot of the booking store.
type State struct {
	Bookings      []Booking      `json:"bookings"`
	Halls         []Hall         `json:"halls"`
	Rooms         []Room         `json:"rooms"`
	Notifications []Notification `json:"notifications"`
}

// DefaultState returns the built-in catalog with no bookings or notifications.
func DefaultState() State {
	return State{
		Bookings:      []Booking{},
		Halls:         DefaultHalls(),
		Rooms:         DefaultRooms(),
		Notifications: []Notification{},
	}
}

// Clone returns a deep copy safe to hand to callers.
func (s State) Clone() State {
	out := State{
		Bookings:      make([]Booking, len(s.Bookings)),
		Halls:         make([]Hall, len(s.Halls)),
		Rooms:         make([]Room, len(s.Rooms)),
		Notifications: make([]Notification, len(s.Notifications)),
	}
	copy(out.Bookings, s.Bookings)
	copy(out.Notifications, s.Notifications)
	for i, h := range s.Halls {
		out.Halls[i] = h.Clone()
	}
	for i, r := range s.Rooms {
		out.Rooms[i] = r.Clone()
	}
	return out
}
