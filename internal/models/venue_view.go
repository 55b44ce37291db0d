package models

// HallView is a hall as shown to clients, with a resolved image and display price.
type HallView struct {
	Hall
	FormattedPrice string `json:"formattedPrice"`
}

type RoomView struct {
	Room
	FormattedPrice string `json:"formattedPrice"`
}

type VenueCatalog struct {
	Halls []HallView `json:"halls"`
	Rooms []RoomView `json:"rooms"`
	Total int        `json:"total"`
}
