package external

// GiphyImageRendition is a single image rendition inside a gif record.
type GiphyImageRendition struct {
	URL string `json:"url"`
}

// GiphyImages carries the renditions we care about. Giphy sends many more,
// all of them are dropped here.
type GiphyImages struct {
	DownsizedMedium GiphyImageRendition `json:"downsized_medium"`
}

// GiphyGifDTO represents a single gif record in a Giphy response.
type GiphyGifDTO struct {
	ID     string      `json:"id"`
	URL    string      `json:"url"`
	Title  string      `json:"title"`
	Images GiphyImages `json:"images"`
}

// GiphyByIDResponse represents the response from the get-by-id endpoint.
// An empty Data (no ID) on a 2xx response means the gif does not exist.
type GiphyByIDResponse struct {
	Data GiphyGifDTO `json:"data"`
}

// GiphySearchResponse represents the response from the search endpoint.
type GiphySearchResponse struct {
	Data []GiphyGifDTO `json:"data"`
}

// GiphyErrorResponse represents error responses from the Giphy API
type GiphyErrorResponse struct {
	Message string `json:"message"`
}
