package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"gif-api/internal/domain/entity"
	"gif-api/internal/testutils"
)

func TestGetRankings_OK(t *testing.T) {
	useCase := &testutils.MockRankingsUseCase{}
	e := echo.New()
	controller := NewRankingsController(e.Group(""), useCase)

	useCase.On("GetRankings").Return([]entity.RankedGif{
		{GifID: "c", Counter: 9, Rank: 1},
		{GifID: "a", Counter: 5, Rank: 2},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/GifRankings", nil)
	rec := httptest.NewRecorder()
	err := controller.GetRankings(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []entity.RankedGif
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.Equal(t, "c", body[0].GifID)
	useCase.AssertExpectations(t)
	useCase.AssertNotCalled(t, "ComputeRankings")
}

func TestGetRankings_FailureMapsTo500(t *testing.T) {
	useCase := &testutils.MockRankingsUseCase{}
	e := echo.New()
	controller := NewRankingsController(e.Group(""), useCase)

	useCase.On("GetRankings").Return(nil, errors.New("scan failed"))

	req := httptest.NewRequest(http.MethodGet, "/GifRankings", nil)
	rec := httptest.NewRecorder()
	err := controller.GetRankings(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
