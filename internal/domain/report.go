package domain

// BookingReportSummary aggregates booking counts for a date range.
type BookingReportSummary struct {
	Total     int `json:"total"`
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
	Paid      int `json:"paid"`
	Unpaid    int `json:"unpaid"`
}

// SpaceUsage counts bookings per space within the report range.
type SpaceUsage struct {
	SpaceID   int32  `json:"space_id"`
	SpaceName string `json:"space_name"`
	Total     int    `json:"total"`
}

type BookingReport struct {
	StartDate  string               `json:"start_date,omitempty"`
	EndDate    string               `json:"end_date,omitempty"`
	Summary    BookingReportSummary `json:"summary"`
	SpaceUsage []SpaceUsage         `json:"space_usage"`
	TopSpaces  []SpaceUsage         `json:"top_spaces"`
	Bookings   []Booking            `json:"bookings"`
}
