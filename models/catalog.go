package models

// Location is a restaurant site. Read-only to the client; keyed by ID.
type Location struct {
	ID               string `json:"id"`
	Address          string `json:"address"`
	Description      string `json:"description"`
	Rating           string `json:"rating"`
	ImageURL         string `json:"imageUrl"`
	TotalCapacity    int    `json:"totalCapacity"`
	AverageOccupancy int    `json:"averageOccupancy"`
}

// LocationOption is the slim {id,address} pair used by selection dropdowns.
type LocationOption struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// Table is produced transiently per search; a new search fully replaces the
// previous result set. GuestCapacity arrives as a string on the wire.
type Table struct {
	ID              string   `json:"id"`
	TableNumber     string   `json:"tableNumber"`
	LocationID      string   `json:"locationId"`
	LocationAddress string   `json:"locationAddress"`
	GuestCapacity   string   `json:"guestCapacity"`
	AvailableSlots  []string `json:"availableSlots"`
}

// Dish is a read-only menu catalog entry.
type Dish struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	Weight          string `json:"weight"`
	ImageURL        string `json:"imageUrl"`
	PreviewImageURL string `json:"previewImageUrl"`
	Available       bool   `json:"available"`

	// Nutrition facts, present on the dish detail endpoint.
	Calories      string `json:"calories,omitempty"`
	Carbohydrates string `json:"carbohydrates,omitempty"`
	Fats          string `json:"fats,omitempty"`
	Proteins      string `json:"proteins,omitempty"`
	Vitamins      string `json:"vitamins,omitempty"`
}

// Review is a single entry of a location's customer feedback page.
type Review struct {
	ID            string `json:"id"`
	UserName      string `json:"userName"`
	UserAvatarURL string `json:"userAvatarUrl"`
	Rate          int    `json:"rate"`
	Date          string `json:"date"`
	Comment       string `json:"comment"`
}

// UserProfile is the singleton profile of the authenticated user. The avatar
// is an opaque image reference or base64 payload; the client never inspects it.
type UserProfile struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserAvatarURL string `json:"userAvatarUrl"`
}
