package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gif-api/internal/domain/entity"
)

type MockGiphyGateway struct {
	mock.Mock
}

func (m *MockGiphyGateway) GetByID(gifID string) (*entity.Gif, error) {
	args := m.Called(gifID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Gif), args.Error(1)
}

func (m *MockGiphyGateway) Search(term string, limit int) ([]entity.Gif, error) {
	args := m.Called(term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Gif), args.Error(1)
}

type MockGifCacheGateway struct {
	mock.Mock
}

func (m *MockGifCacheGateway) FindByGifID(gifID string) (*entity.Gif, error) {
	args := m.Called(gifID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Gif), args.Error(1)
}

func (m *MockGifCacheGateway) SaveGif(gif entity.Gif) error {
	args := m.Called(gif)
	return args.Error(0)
}

func (m *MockGifCacheGateway) FindBySearchTerm(term string) ([]entity.Gif, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Gif), args.Error(1)
}

func (m *MockGifCacheGateway) SaveSearch(term string, gifs []entity.Gif) error {
	args := m.Called(term, gifs)
	return args.Error(0)
}

type MockCounterGateway struct {
	mock.Mock
}

func (m *MockCounterGateway) FindByGifID(gifID string) (*entity.GifCounter, error) {
	args := m.Called(gifID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GifCounter), args.Error(1)
}

func (m *MockCounterGateway) Upsert(counter entity.GifCounter) (*entity.GifCounter, error) {
	args := m.Called(counter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GifCounter), args.Error(1)
}

func (m *MockCounterGateway) FindAll() ([]entity.GifCounter, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GifCounter), args.Error(1)
}

type MockRankingsUseCase struct {
	mock.Mock
}

func (m *MockRankingsUseCase) GetRankings() ([]entity.RankedGif, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RankedGif), args.Error(1)
}

func (m *MockRankingsUseCase) ComputeRankings() ([]entity.RankedGif, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RankedGif), args.Error(1)
}

func (m *MockRankingsUseCase) WarmRankings(requestID string) error {
	args := m.Called(requestID)
	return args.Error(0)
}

type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockSnapshotCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockGifUseCase struct {
	mock.Mock
}

func (m *MockGifUseCase) GetByID(gifID string, external bool) (*entity.Gif, error) {
	args := m.Called(gifID, external)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Gif), args.Error(1)
}

func (m *MockGifUseCase) Search(term string, limit int) ([]entity.Gif, error) {
	args := m.Called(term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Gif), args.Error(1)
}

func (m *MockGifUseCase) SearchWithRelevancy(term string) ([]entity.RelevantGif, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RelevantGif), args.Error(1)
}
