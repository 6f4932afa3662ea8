package models

// Profile is the vendor-facing description of a business.
type Profile struct {
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
	OwnerName    string `json:"ownerName"`
	Description  string `json:"description"`
	Logo         string `json:"logo,omitempty"`
}

// Business is an entry in the customer directory. Demo businesses are
// placeholders with no vendor account and no catalog.
type Business struct {
	Vendor   string
	Name     string
	Location string
	Owner    string
	Profile  string
	Logo     string
	Demo     bool
}
