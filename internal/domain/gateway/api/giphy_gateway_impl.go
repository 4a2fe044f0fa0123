package api

import (
	"fmt"
	"strconv"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
	"gif-api/internal/domain/model/external"
	"gif-api/pkg/http"
)

// giphyGatewayImpl implements the GiphyGateway interface
type giphyGatewayImpl struct {
	apiKey     string
	byIDPath   string
	searchPath string
	httpClient *http.Client
}

// NewGiphyGateway creates a new instance of GiphyGateway with an HTTP client.
// byIDPath and searchPath are the endpoint paths on the given base URL.
func NewGiphyGateway(baseURL, byIDPath, searchPath, apiKey string, clientOptions http.ClientOptions) GiphyGateway {
	return &giphyGatewayImpl{
		apiKey:     apiKey,
		byIDPath:   byIDPath,
		searchPath: searchPath,
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// GetByID fetches a single gif record by its Giphy id. A successful response
// without a gif record maps to nil, nil.
func (g *giphyGatewayImpl) GetByID(gifID string) (*entity.Gif, error) {
	path := fmt.Sprintf("%s/%s", g.byIDPath, gifID)

	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(map[string]string{"api_key": g.apiKey}).
		WithSuccessResp(&external.GiphyByIDResponse{}).
		WithErrorResp(&external.GiphyErrorResponse{}).
		Execute()

	if err != nil {
		return nil, g.upstreamError("get by id", errResp, err)
	}

	response := successResp.(*external.GiphyByIDResponse)
	if response.Data.ID == "" {
		return nil, nil
	}

	gif := mapGif(response.Data)
	return &gif, nil
}

// Search fetches up to limit gifs matching the search term.
func (g *giphyGatewayImpl) Search(term string, limit int) ([]entity.Gif, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(g.searchPath).
		WithQueryParams(map[string]string{
			"q":       term,
			"api_key": g.apiKey,
			"limit":   strconv.Itoa(limit),
		}).
		WithSuccessResp(&external.GiphySearchResponse{}).
		WithErrorResp(&external.GiphyErrorResponse{}).
		Execute()

	if err != nil {
		return nil, g.upstreamError("search", errResp, err)
	}

	response := successResp.(*external.GiphySearchResponse)

	gifs := make([]entity.Gif, 0, len(response.Data))
	for _, record := range response.Data {
		gifs = append(gifs, mapGif(record))
	}

	return gifs, nil
}

func (g *giphyGatewayImpl) upstreamError(operation string, errResp any, err error) error {
	if errResp != nil {
		if giphyErr := errResp.(*external.GiphyErrorResponse); giphyErr.Message != "" {
			return fmt.Errorf("%w: %s: %s", model.ErrUpstream, operation, giphyErr.Message)
		}
	}
	return fmt.Errorf("%w: %s: %v", model.ErrUpstream, operation, err)
}

// mapGif pares a Giphy record down to the fields we cache, preferring the
// top-level url and falling back to the downsized_medium rendition.
func mapGif(record external.GiphyGifDTO) entity.Gif {
	url := record.URL
	if url == "" {
		url = record.Images.DownsizedMedium.URL
	}

	return entity.Gif{
		ID:    record.ID,
		URL:   url,
		Title: record.Title,
	}
}
