package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gif-api/internal/domain/model"
	"gif-api/internal/domain/usecase/gif"
	"gif-api/pkg/msg"
	"gif-api/pkg/util/numberutils"
)

type GifController struct {
	api     *echo.Group
	useCase gif.UseCase
}

func NewGifController(api *echo.Group, useCase gif.UseCase) *GifController {
	return &GifController{api: api, useCase: useCase}
}

// InitGifRoutes initializes gif routes
func (controller *GifController) InitGifRoutes() {
	controller.api.GET("/GifById/:id", controller.GetGifByID)
	controller.api.GET("/GifsSearch/:term", controller.SearchGifs)
	controller.api.GET("/GifsSearchWithRelevancy/:term", controller.SearchGifsWithRelevancy)
}

// GetGifByID godoc
// @Summary Get a gif by id
// @Description Retrieve a single gif by its Giphy id, served from the cache when fresh. Counts as a read.
// @Tags gifs
// @Accept json
// @Produce json
// @Param id path string true "Gif id"
// @Success 200 {object} entity.Gif "Gif record"
// @Failure 400 {object} map[string]string "Missing gif id"
// @Failure 404 {object} map[string]string "Gif not found"
// @Failure 502 {object} map[string]string "Upstream or store failure"
// @Router /GifById/{id} [get]
func (controller *GifController) GetGifByID(c echo.Context) error {
	gifID := c.Param("id")

	gifRecord, err := controller.useCase.GetByID(gifID, true)
	if err != nil {
		return writeError(c, err)
	}
	if gifRecord == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("gif.error.not-found", gifID)})
	}
	return c.JSON(http.StatusOK, gifRecord)
}

// SearchGifs godoc
// @Summary Search gifs
// @Description Search gifs by term, served from the cache when the same term was searched within the TTL window
// @Tags gifs
// @Accept json
// @Produce json
// @Param term path string true "Search term"
// @Param limit query int false "Maximum results to fetch upstream on a cache miss"
// @Success 200 {array} entity.Gif "Matching gifs in upstream order"
// @Failure 400 {object} map[string]string "Missing search term"
// @Failure 502 {object} map[string]string "Upstream or store failure"
// @Router /GifsSearch/{term} [get]
func (controller *GifController) SearchGifs(c echo.Context) error {
	term := c.Param("term")
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)

	gifs, err := controller.useCase.Search(term, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gifs)
}

// SearchGifsWithRelevancy godoc
// @Summary Search gifs ordered by relevancy
// @Description Search gifs by term and re-order the results by read counter, most read first
// @Tags gifs
// @Accept json
// @Produce json
// @Param term path string true "Search term"
// @Success 200 {array} entity.RelevantGif "Matching gifs ordered by read counter"
// @Failure 400 {object} map[string]string "Missing search term"
// @Failure 502 {object} map[string]string "Upstream or store failure"
// @Router /GifsSearchWithRelevancy/{term} [get]
func (controller *GifController) SearchGifsWithRelevancy(c echo.Context) error {
	term := c.Param("term")

	gifs, err := controller.useCase.SearchWithRelevancy(term)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, gifs)
}

// writeError maps pipeline errors onto HTTP statuses.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrFetch):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
