package rankings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gif-api/internal/domain/entity"
	"gif-api/internal/domain/model"
	"gif-api/internal/testutils"
)

func TestComputeRankings_OrdersByCounterDescending(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{
		{StorageID: "h1", GifID: "a", Counter: 5, Timestamp: "2026-08-30T10:00:00Z"},
		{StorageID: "h2", GifID: "b", Counter: 2, Timestamp: "2026-08-30T11:00:00Z"},
		{StorageID: "h3", GifID: "c", Counter: 9, Timestamp: "2026-08-30T12:00:00Z"},
	}, nil)
	mockGifs.On("GetByID", "c", false).Return(&entity.Gif{ID: "c", URL: "https://giphy.com/c"}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a", URL: "https://giphy.com/a"}, nil)
	mockGifs.On("GetByID", "b", false).Return(&entity.Gif{ID: "b", URL: "https://giphy.com/b"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	ranked, err := uc.ComputeRankings()

	assert.NoError(t, err)
	assert.Len(t, ranked, 3)

	assert.Equal(t, "c", ranked[0].GifID)
	assert.Equal(t, 9, ranked[0].Counter)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "https://giphy.com/c", ranked[0].URL)

	assert.Equal(t, "a", ranked[1].GifID)
	assert.Equal(t, 2, ranked[1].Rank)

	assert.Equal(t, "b", ranked[2].GifID)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestComputeRankings_TiesKeepScanOrder(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{
		{GifID: "first", Counter: 4},
		{GifID: "second", Counter: 4},
	}, nil)
	mockGifs.On("GetByID", mock.Anything, false).Return(nil, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	ranked, err := uc.ComputeRankings()

	assert.NoError(t, err)
	assert.Equal(t, "first", ranked[0].GifID)
	assert.Equal(t, "second", ranked[1].GifID)
}

func TestComputeRankings_MetadataReadsNeverCount(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{{GifID: "a", Counter: 1}}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	_, err := uc.ComputeRankings()

	assert.NoError(t, err)
	mockGifs.AssertNotCalled(t, "GetByID", mock.Anything, true)
	mockGifs.AssertExpectations(t)
}

func TestComputeRankings_MetadataFailureKeepsEntry(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{
		{GifID: "a", Counter: 3},
		{GifID: "b", Counter: 1},
	}, nil)
	mockGifs.On("GetByID", "a", false).Return(nil, errors.New("upstream down"))
	mockGifs.On("GetByID", "b", false).Return(&entity.Gif{ID: "b", URL: "https://giphy.com/b"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	ranked, err := uc.ComputeRankings()

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].GifID)
	assert.Empty(t, ranked[0].URL)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "https://giphy.com/b", ranked[1].URL)
}

func TestComputeRankings_ScanFailure(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return(nil, errors.New("scan failed"))

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	ranked, err := uc.ComputeRankings()

	assert.Nil(t, ranked)
	assert.ErrorIs(t, err, model.ErrCounter)
	mockGifs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetRankings_ServesSnapshotWithoutScan(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}
	mockSnapshots := &testutils.MockSnapshotCache{}

	mockSnapshots.On("Get", mock.Anything, "latest", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]entity.RankedGif)
			*dest = []entity.RankedGif{
				{GifID: "c", Counter: 9, Rank: 1, URL: "https://giphy.com/c"},
				{GifID: "a", Counter: 5, Rank: 2, URL: "https://giphy.com/a"},
			}
		}).Return(nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, mockSnapshots)
	ranked, err := uc.GetRankings()

	assert.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, "c", ranked[0].GifID)
	mockCounters.AssertNotCalled(t, "FindAll")
	mockGifs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetRankings_SnapshotMissFallsBackToCompute(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}
	mockSnapshots := &testutils.MockSnapshotCache{}

	mockSnapshots.On("Get", mock.Anything, "latest", mock.Anything).
		Return(errors.New("key not found"))
	mockCounters.On("FindAll").Return([]entity.GifCounter{{GifID: "a", Counter: 1}}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, mockSnapshots)
	ranked, err := uc.GetRankings()

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rank)
	mockCounters.AssertExpectations(t)
}

func TestGetRankings_NoSnapshotCacheComputes(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{{GifID: "a", Counter: 1}}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)
	ranked, err := uc.GetRankings()

	assert.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestWarmRankings_StoresSnapshot(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}
	mockSnapshots := &testutils.MockSnapshotCache{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{{GifID: "a", Counter: 1}}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a", URL: "https://giphy.com/a"}, nil)
	mockSnapshots.On("Set", mock.Anything, "latest", mock.MatchedBy(func(ranked []entity.RankedGif) bool {
		return len(ranked) == 1 && ranked[0].GifID == "a" && ranked[0].Rank == 1
	})).Return(nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, mockSnapshots)

	assert.NoError(t, uc.WarmRankings("req-1"))
	mockSnapshots.AssertExpectations(t)
}

func TestWarmRankings_Success(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return([]entity.GifCounter{{GifID: "a", Counter: 1}}, nil)
	mockGifs.On("GetByID", "a", false).Return(&entity.Gif{ID: "a"}, nil)

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)

	assert.NoError(t, uc.WarmRankings("req-1"))
}

func TestWarmRankings_ComputeFailure(t *testing.T) {
	mockGifs := &testutils.MockGifUseCase{}
	mockCounters := &testutils.MockCounterGateway{}

	mockCounters.On("FindAll").Return(nil, errors.New("scan failed"))

	uc := NewRankingsUseCase(mockGifs, mockCounters, nil)

	assert.ErrorIs(t, uc.WarmRankings("req-1"), model.ErrCounter)
}
