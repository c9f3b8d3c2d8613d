package entities

// Page is one page of a list response.
type Page struct {
	Kind          string     `json:"kind,omitempty"`
	Resources     []Resource `json:"resources,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}
