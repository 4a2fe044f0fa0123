package entity

// RankedGif is a counter row decorated with display metadata and a dense
// 1-based rank. URL stays empty when metadata resolution fails for that gif.
type RankedGif struct {
	GifID     string `json:"gif_id"`
	Counter   int    `json:"counter"`
	Timestamp string `json:"timestamp,omitempty"`
	URL       string `json:"url,omitempty"`
	Rank      int    `json:"rank"`
}

// RelevantGif is a search result merged with its read counter.
type RelevantGif struct {
	Gif
	Counter int `json:"counter"`
}
