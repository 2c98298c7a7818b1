package domain

// Branch is a university branch. Code is the natural key; it is
// assigned once at creation and never regenerated afterwards.
type Branch struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CampusRole string

const (
	CampusRoleHQ        CampusRole = "HQ"
	CampusRoleMain      CampusRole = "Main Campus"
	CampusRoleSatellite CampusRole = "Satellite Campus"
)

func (r CampusRole) Valid() bool {
	switch r {
	case CampusRoleHQ, CampusRoleMain, CampusRoleSatellite:
		return true
	}
	return false
}

type Campus struct {
	CampusCode string     `json:"campus_code"`
	BranchCode string     `json:"branch_code"`
	CampusName string     `json:"campus_name"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Role       CampusRole `json:"role"`
}
