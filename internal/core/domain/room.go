package domain

// RoomTypeCode is the single character code of a room type.
type RoomTypeCode string

const (
	RoomTypeSingle RoomTypeCode = "S"
	RoomTypeDouble RoomTypeCode = "D"
	RoomTypeFamily RoomTypeCode = "F"
)

// RoomType describes a category of room and how many people it sleeps.
type RoomType struct {
	RoomTypeID   int64        `json:"roomTypeID"`
	Code         RoomTypeCode `json:"code"`
	Name         string       `json:"name"`
	MaxOccupants int          `json:"maxOccupants"`
}

// Fits reports whether the room type can hold the given number of guests.
func (rt RoomType) Fits(guests int) bool {
	return guests > 0 && guests <= rt.MaxOccupants
}

// Room is a physical room. Its location and type never change.
type Room struct {
	RoomID     int64 `json:"roomID"`
	LocationID int64 `json:"locationID"`
	RoomTypeID int64 `json:"roomTypeID"`
}
