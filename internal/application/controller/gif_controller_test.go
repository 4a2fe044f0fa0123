package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
	"gif-api/internal/testutils"
)

func newGifControllerTest(useCase *testutils.MockGifUseCase) (*echo.Echo, *GifController) {
	e := echo.New()
	return e, NewGifController(e.Group(""), useCase)
}

func gifContext(e *echo.Echo, target string, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramName)
	c.SetParamValues(paramValue)
	return c, rec
}

func TestGetGifByID_OK(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("GetByID", "abc", true).
		Return(&entity.Gif{ID: "abc", URL: "https://giphy.com/abc", Title: "abc gif"}, nil)

	c, rec := gifContext(e, "/GifById/abc", "id", "abc")
	err := controller.GetGifByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body entity.Gif
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc", body.ID)
	useCase.AssertExpectations(t)
}

func TestGetGifByID_NotFound(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("GetByID", "missing", true).Return(nil, nil)

	c, rec := gifContext(e, "/GifById/missing", "id", "missing")
	err := controller.GetGifByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGifByID_ValidationMapsTo400(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("GetByID", "", true).
		Return(nil, fmt.Errorf("%w: gif id is required", model.ErrValidation))

	c, rec := gifContext(e, "/GifById/", "id", "")
	err := controller.GetGifByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGifByID_FetchFailureMapsTo502(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("GetByID", "abc", true).
		Return(nil, fmt.Errorf("%w: upstream down", model.ErrFetch))

	c, rec := gifContext(e, "/GifById/abc", "id", "abc")
	err := controller.GetGifByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetGifByID_UnknownFailureMapsTo500(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("GetByID", "abc", true).Return(nil, errors.New("boom"))

	c, rec := gifContext(e, "/GifById/abc", "id", "abc")
	err := controller.GetGifByID(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchGifs_OK(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("Search", "cats", 0).Return([]entity.Gif{{ID: "a"}, {ID: "b"}}, nil)

	c, rec := gifContext(e, "/GifsSearch/cats", "term", "cats")
	err := controller.SearchGifs(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []entity.Gif
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestSearchGifs_LimitQueryParam(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("Search", "cats", 5).Return([]entity.Gif{}, nil)

	c, rec := gifContext(e, "/GifsSearch/cats?limit=5", "term", "cats")
	err := controller.SearchGifs(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	useCase.AssertExpectations(t)
}

func TestSearchGifsWithRelevancy_OK(t *testing.T) {
	useCase := &testutils.MockGifUseCase{}
	e, controller := newGifControllerTest(useCase)

	useCase.On("SearchWithRelevancy", "cats").Return([]entity.RelevantGif{
		{Gif: entity.Gif{ID: "b"}, Counter: 7},
		{Gif: entity.Gif{ID: "a"}, Counter: 2},
	}, nil)

	c, rec := gifContext(e, "/GifsSearchWithRelevancy/cats", "term", "cats")
	err := controller.SearchGifsWithRelevancy(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []entity.RelevantGif
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b", body[0].ID)
	assert.Equal(t, 7, body[0].Counter)
}
