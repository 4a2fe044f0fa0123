package entity

// GifCounter is a read-counter row in the GifCounter table.
//
// StorageID is the HarperDB-assigned row hash. It is empty until the first
// upsert and must be carried forward on every later upsert so the row is
// updated in place instead of duplicated.
type GifCounter struct {
	StorageID string `json:"id,omitempty"`
	GifID     string `json:"gif_id"`
	Counter   int    `json:"counter"`
	Timestamp string `json:"timestamp,omitempty"`
}
