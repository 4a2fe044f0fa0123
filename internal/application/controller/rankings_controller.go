package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gif-api/internal/domain/usecase/rankings"
)

type RankingsController struct {
	api     *echo.Group
	useCase rankings.UseCase
}

func NewRankingsController(api *echo.Group, useCase rankings.UseCase) *RankingsController {
	return &RankingsController{api: api, useCase: useCase}
}

// InitRankingsRoutes initializes rankings routes
func (controller *RankingsController) InitRankingsRoutes() {
	controller.api.GET("/GifRankings", controller.GetRankings)
}

// GetRankings godoc
// @Summary Get gif rankings
// @Description Retrieve every counted gif ordered from most to least read, with dense 1-based ranks. Served from the warmup snapshot when one is fresh.
// @Tags rankings
// @Accept json
// @Produce json
// @Success 200 {array} entity.RankedGif "Ranked gifs"
// @Failure 500 {object} map[string]string "Counter scan failure"
// @Router /GifRankings [get]
func (controller *RankingsController) GetRankings(c echo.Context) error {
	ranked, err := controller.useCase.GetRankings()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ranked)
}
