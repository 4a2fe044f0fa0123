package entity

// Gif is the pared-down gif record returned to callers. Only these three
// fields are persisted in the cache tables, whatever else Giphy sends back.
type Gif struct {
	ID    string `json:"id"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
}
