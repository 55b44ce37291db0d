package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/pricing"
)

const recentBookingsLimit = 5

var ErrBookingNotFound = errors.New("booking not found")

// AdminStore is the booking store as seen by the admin console.
type AdminStore interface {
	CatalogReader
	Bookings() []models.Booking
	Booking(id int64) (models.Booking, bool)
	Notifications() []models.Notification
	UnreadCount() int
	UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (models.Booking, bool, error)
	MarkNotificationRead(ctx context.Context, id int64) bool
	MarkAllNotificationsRead(ctx context.Context) int
}

type DashboardStats struct {
	TotalBookings       int              `json:"totalBookings"`
	PendingBookings     int              `json:"pendingBookings"`
	ConfirmedBookings   int              `json:"confirmedBookings"`
	CancelledBookings   int              `json:"cancelledBookings"`
	TotalRevenue        float64          `json:"totalRevenue"`
	FormattedRevenue    string           `json:"formattedRevenue"`
	TotalVenues         int              `json:"totalVenues"`
	UnreadNotifications int              `json:"unreadNotifications"`
	RecentBookings      []models.Booking `json:"recentBookings"`
}

// BookingFilter narrows the booking list. Empty or "all" disables a field.
type BookingFilter struct {
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,oneof=all pending confirmed cancelled"`
	Type   string `form:"type" validate:"omitempty,oneof=all hall room"`
}

type Customer struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Bookings     []models.Booking `json:"bookings"`
	TotalSpent   float64          `json:"totalSpent"`
	LastBooking  time.Time        `json:"lastBooking"`
	HallBookings int              `json:"hallBookings"`
	RoomBookings int              `json:"roomBookings"`
}

type CustomerSummary struct {
	TotalCustomers  int     `json:"totalCustomers"`
	RepeatCustomers int     `json:"repeatCustomers"`
	AverageSpent    float64 `json:"averageSpent"`
	FormattedAvg    string  `json:"formattedAverageSpent"`
}

type AdminService struct {
	store  AdminStore
	venues *VenuesService
	logger *slog.Logger
}

func NewAdminService(adminStore AdminStore, venues *VenuesService, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{
		store:  adminStore,
		venues: venues,
		logger: logger,
	}
}

func (as *AdminService) Dashboard() *DashboardStats {
	bookings := as.store.Bookings()
	stats := &DashboardStats{
		TotalBookings:       len(bookings),
		TotalVenues:         len(as.store.Halls()) + len(as.store.Rooms()),
		UnreadNotifications: as.store.UnreadCount(),
	}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.PendingBookings++
		case models.BookingConfirmed:
			stats.ConfirmedBookings++
		case models.BookingCancelled:
			stats.CancelledBookings++
		}
		if b.PaymentStatus == models.PaymentCompleted {
			stats.TotalRevenue += b.TotalAmount
		}
	}
	stats.FormattedRevenue = pricing.FormatPrice(stats.TotalRevenue)
	stats.RecentBookings = recentBookings(bookings, recentBookingsLimit)
	return stats
}

// recentBookings returns the newest n bookings, newest first. It sorts a copy.
func recentBookings(bookings []models.Booking, n int) []models.Booking {
	sorted := append([]models.Booking{}, bookings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func (as *AdminService) FilterBookings(filter BookingFilter) ([]models.Booking, error) {
	if err := models.Validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("invalid booking filter: %v", err)
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := []models.Booking{}
	for _, b := range as.store.Bookings() {
		if filter.Status != "" && filter.Status != "all" && string(b.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && filter.Type != "all" && string(b.Type) != filter.Type {
			continue
		}
		if search != "" && !bookingMatches(b, search) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func bookingMatches(b models.Booking, search string) bool {
	for _, field := range []string{b.CustomerName, b.Email, b.HallName, b.RoomName} {
		if field != "" && strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (as *AdminService) Booking(id int64) (models.Booking, error) {
	b, ok := as.store.Booking(id)
	if !ok {
		return models.Booking{}, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
	}
	return b, nil
}

func (as *AdminService) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) (models.Booking, error) {
	b, found, err := as.store.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return models.Booking{}, err
	}
	if !found {
		return models.Booking{}, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
	}
	return b, nil
}

// Customers groups bookings by email. Name and phone come from the customer's
// most recent booking.
func (as *AdminService) Customers(search string) []Customer {
	customers := aggregateCustomers(as.store.Bookings())
	search = strings.TrimSpace(search)
	if search == "" {
		return customers
	}

	lower := strings.ToLower(search)
	out := []Customer{}
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, search) {
			out = append(out, c)
		}
	}
	return out
}

func aggregateCustomers(bookings []models.Booking) []Customer {
	index := map[string]int{}
	customers := []Customer{}
	for _, b := range bookings {
		i, ok := index[b.Email]
		if !ok {
			index[b.Email] = len(customers)
			customers = append(customers, Customer{
				ID:          b.Email,
				Name:        b.CustomerName,
				Email:       b.Email,
				Phone:       b.Phone,
				LastBooking: b.CreatedAt,
			})
			i = len(customers) - 1
		}
		c := &customers[i]
		c.Bookings = append(c.Bookings, b)
		c.TotalSpent += b.TotalAmount
		if !b.CreatedAt.Before(c.LastBooking) {
			c.LastBooking = b.CreatedAt
			c.Name = b.CustomerName
			c.Phone = b.Phone
		}
		if b.Type == models.VenueHall {
			c.HallBookings++
		} else {
			c.RoomBookings++
		}
	}
	return customers
}

func (as *AdminService) CustomerSummary() *CustomerSummary {
	customers := aggregateCustomers(as.store.Bookings())
	summary := &CustomerSummary{TotalCustomers: len(customers)}
	var spent float64
	for _, c := range customers {
		if len(c.Bookings) > 1 {
			summary.RepeatCustomers++
		}
		spent += c.TotalSpent
	}
	if len(customers) > 0 {
		summary.AverageSpent = spent / float64(len(customers))
	}
	summary.FormattedAvg = pricing.FormatPrice(summary.AverageSpent)
	return summary
}

func (as *AdminService) Venues() *models.VenueCatalog {
	return as.venues.Catalog()
}

func (as *AdminService) Notifications() []models.Notification {
	return as.store.Notifications()
}

func (as *AdminService) UnreadCount() int {
	return as.store.UnreadCount()
}

func (as *AdminService) MarkNotificationRead(ctx context.Context, id int64) bool {
	return as.store.MarkNotificationRead(ctx, id)
}

func (as *AdminService) MarkAllNotificationsRead(ctx context.Context) int {
	n := as.store.MarkAllNotificationsRead(ctx)
	as.logger.Debug("Notifications marked read", "count", n)
	return n
}
