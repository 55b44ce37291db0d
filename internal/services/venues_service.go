package services

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/hallbook/internal/helpers"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/pricing"
)

// CatalogReader is the read side of the booking store used for venue listings.
type CatalogReader interface {
	Halls() []models.Hall
	Rooms() []models.Room
	Hall(id int64) (models.Hall, bool)
	Room(id int64) (models.Room, bool)
}

type VenuesService struct {
	catalog CatalogReader
	cld     *cloudinary.Cloudinary
}

// NewVenuesService accepts a nil Cloudinary client; images are then served as stored.
func NewVenuesService(catalog CatalogReader, cld *cloudinary.Cloudinary) *VenuesService {
	return &VenuesService{
		catalog: catalog,
		cld:     cld,
	}
}

func (vs *VenuesService) Catalog() *models.VenueCatalog {
	halls := vs.Halls()
	rooms := vs.Rooms()
	return &models.VenueCatalog{
		Halls: halls,
		Rooms: rooms,
		Total: len(halls) + len(rooms),
	}
}

func (vs *VenuesService) Halls() []models.HallView {
	halls := vs.catalog.Halls()
	out := make([]models.HallView, 0, len(halls))
	for _, h := range halls {
		out = append(out, vs.hallView(h))
	}
	return out
}

func (vs *VenuesService) Rooms() []models.RoomView {
	rooms := vs.catalog.Rooms()
	out := make([]models.RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, vs.roomView(r))
	}
	return out
}

func (vs *VenuesService) Hall(id int64) (*models.HallView, bool) {
	h, ok := vs.catalog.Hall(id)
	if !ok {
		return nil, false
	}
	view := vs.hallView(h)
	return &view, true
}

func (vs *VenuesService) Room(id int64) (*models.RoomView, bool) {
	r, ok := vs.catalog.Room(id)
	if !ok {
		return nil, false
	}
	view := vs.roomView(r)
	return &view, true
}

func (vs *VenuesService) hallView(h models.Hall) models.HallView {
	h.Image = helpers.ImageURL(vs.cld, h.Image)
	return models.HallView{Hall: h, FormattedPrice: pricing.FormatPrice(h.Price)}
}

func (vs *VenuesService) roomView(r models.Room) models.RoomView {
	r.Image = helpers.ImageURL(vs.cld, r.Image)
	return models.RoomView{Room: r, FormattedPrice: pricing.FormatPrice(r.Price)}
}
