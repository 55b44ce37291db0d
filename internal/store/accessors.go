package store

import (
	"github.com/joshua-takyi/hallbook/internal/models"
)

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Halls() []models.Hall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Hall, len(s.state.Halls))
	for i, h := range s.state.Halls {
		out[i] = h.Clone()
	}
	return out
}

func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, len(s.state.Rooms))
	for i, r := range s.state.Rooms {
		out[i] = r.Clone()
	}
	return out
}

func (s *Store) Hall(id int64) (models.Hall, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.findHall(id)
	return h.Clone(), ok
}

func (s *Store) Room(id int64) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.findRoom(id)
	return r.Clone(), ok
}

// Bookings returns bookings in creation order.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking{}, s.state.Bookings...)
}

func (s *Store) Booking(id int64) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.state.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification{}, s.state.Notifications...)
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, notif := range s.state.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}
