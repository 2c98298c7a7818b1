package domain

// Library is a physical library building. CampusCode is a loose text
// reference, not an enforced foreign key.
type Library struct {
	LibraryCode  string   `json:"library_code"`
	BranchCode   string   `json:"branch_code,omitempty"`
	CampusCode   string   `json:"campus_code,omitempty"`
	LibraryName  string   `json:"library_name"`
	ShortName    string   `json:"short_name,omitempty"`
	LibraryType  string   `json:"library_type,omitempty"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Postcode     string   `json:"postcode,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	WebsiteURL   string   `json:"website_url,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	WeekendHours string   `json:"weekend_hours,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	SourceURL    string   `json:"source_url,omitempty"`
	LastVerified string   `json:"last_verified"` // YYYY-MM-DD, must be "today" at submission
}
