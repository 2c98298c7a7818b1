package domain

// LibrarySpace is a bookable room or area inside a library.
type LibrarySpace struct {
	SpaceID              int32  `json:"space_id"`
	LibraryCode          string `json:"library_code"`
	SpaceName            string `json:"space_name"`
	Description          string `json:"description,omitempty"`
	RoomNumber           string `json:"room_number,omitempty"`
	Floor                string `json:"floor,omitempty"`
	SpaceType            string `json:"space_type,omitempty"`
	IsActive             bool   `json:"is_active"`
	Capacity             int32  `json:"capacity"`
	HasProjector         bool   `json:"has_projector"`
	HasWhiteboard        bool   `json:"has_whiteboard"`
	HasWifi              bool   `json:"has_wifi"`
	HasPowerPlug         bool   `json:"has_power_plug"`
	HasNetworkNode       bool   `json:"has_network_node"`
	WheelchairAccessible bool   `json:"wheelchair_accessible"`
	HasClimateControl    bool   `json:"has_climate_control"`
	NoiseLevel           string `json:"noise_level,omitempty"`
	AvailableFrom        string `json:"available_from"` // HH:MM
	AvailableTo          string `json:"available_to"`   // HH:MM
	BufferMinutes        int32  `json:"buffer_minutes"`
	AdvanceNotice        int32  `json:"advance_notice"` // hours
	RequiresPayment      bool   `json:"requires_payment"`
	FeeAmount            int32  `json:"fee_amount"` // cents
	RequiresApproval     bool   `json:"requires_approval"`
	AccessPolicy         string `json:"access_policy,omitempty"`
	BookingNotes         string `json:"booking_notes,omitempty"`
}

// SpaceFilter narrows a space listing. Zero values mean "don't filter".
type SpaceFilter struct {
	LibraryCode          string
	CampusCode           string
	HasProjector         bool
	HasWhiteboard        bool
	HasWifi              bool
	HasPowerPlug         bool
	HasNetworkNode       bool
	WheelchairAccessible bool
}
