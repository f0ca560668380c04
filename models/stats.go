package models

// Stats holds the site-wide counters shown on the landing page and the
// admin dashboard cards. Warning is an optional site-wide banner text that
// overrides the locally cached one when present.
type Stats struct {
	Games    int    `json:"games"`
	Users    int    `json:"users"`
	Comments int    `json:"comments"`
	Warning  string `json:"warning,omitempty"`
}
