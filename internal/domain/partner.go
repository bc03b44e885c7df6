package domain

// Advertiser owns campaigns.
type Advertiser struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AgencyID    int    `json:"agencyId,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Field returns the comparable value of a named field.
func (a Advertiser) Field(name string) (any, bool) {
	switch name {
	case "id":
		return float64(a.ID), true
	case "name":
		return a.Name, a.Name != ""
	case "agencyId":
		return float64(a.AgencyID), true
	case "contactName":
		return a.ContactName, a.ContactName != ""
	case "email":
		return a.Email, a.Email != ""
	}
	return nil, false
}

// Publisher owns a website and its zones.
type Publisher struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AgencyID    int    `json:"agencyId,omitempty"`
	Website     string `json:"website,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Field returns the comparable value of a named field.
func (p Publisher) Field(name string) (any, bool) {
	switch name {
	case "id":
		return float64(p.ID), true
	case "name":
		return p.Name, p.Name != ""
	case "agencyId":
		return float64(p.AgencyID), true
	case "website":
		return p.Website, p.Website != ""
	case "contactName":
		return p.ContactName, p.ContactName != ""
	case "email":
		return p.Email, p.Email != ""
	}
	return nil, false
}
