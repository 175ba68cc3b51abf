package flower_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/flowers-service/cmd/api/flower"
	flowermock "github.com/flowers-service/cmd/api/flower/mocks"
	"github.com/google/uuid"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

var notificationsTimeout = 1 * time.Second

func TestCreateFlower(t *testing.T) {

	t.Run("creates a flower without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		reqFlower := flower.CreateFlowerRequest{
			Name:        "Service tester flower",
			Color:       "Red",
			Description: toPointer("created from the service test"),
			Price:       toPointer(100.0),
			Stock:       toPointer(99),
		}

		mockRepo.EXPECT().CreateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			is.True(f.ID != uuid.Nil)
			is.Equal(f.Name, reqFlower.Name)
			is.Equal(f.Color, "red") //color is normalized to lowercase
			is.Equal(f.Description, reqFlower.Description)
			is.Equal(f.Price, *reqFlower.Price)
			is.Equal(f.Stock, *reqFlower.Stock)
			is.True(f.CreatedAt.Compare(time.Now().Round(time.Millisecond)) <= 0)
			is.True(f.UpdatedAt.Compare(time.Now().Round(time.Millisecond)) <= 0)
			return f, nil
		})

		var notified sync.WaitGroup
		notified.Add(1)
		mockNtfy.EXPECT().FlowerCreated(gomock.Any(), reqFlower.Name, *reqFlower.Stock).DoAndReturn(func(ctx context.Context, name string, stock int) error {
			notified.Done()
			return nil
		})

		createdFlower, err := mS.CreateFlower(ctx, reqFlower)
		is.NoErr(err)
		is.True(createdFlower.ID != uuid.Nil)
		is.Equal(createdFlower.Name, reqFlower.Name)
		is.Equal(createdFlower.Color, "red")
		is.Equal(createdFlower.Price, *reqFlower.Price)
		is.Equal(createdFlower.Stock, *reqFlower.Stock)

		notified.Wait()
	})

	t.Run("price and stock default to zero when absent", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		reqFlower := flower.CreateFlowerRequest{
			Name:  "Minimal flower",
			Color: "white",
		}

		mockRepo.EXPECT().CreateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			is.Equal(f.Price, 0.0)
			is.Equal(f.Stock, 0)
			is.Equal(f.Description, nil)
			return f, nil
		})

		var notified sync.WaitGroup
		notified.Add(1)
		mockNtfy.EXPECT().FlowerCreated(gomock.Any(), reqFlower.Name, 0).DoAndReturn(func(ctx context.Context, name string, stock int) error {
			notified.Done()
			return nil
		})

		createdFlower, err := mS.CreateFlower(ctx, reqFlower)
		is.NoErr(err)
		is.Equal(createdFlower.Price, 0.0)
		is.Equal(createdFlower.Stock, 0)

		notified.Wait()
	})

	t.Run("an invalid name fails before reaching the repository", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		_, err := mS.CreateFlower(ctx, flower.CreateFlowerRequest{
			Name:  "  ",
			Color: "red",
		})
		is.Equal(err, flower.ErrResponseInvalidName)
	})

	t.Run("a negative price fails before reaching the repository", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		_, err := mS.CreateFlower(ctx, flower.CreateFlowerRequest{
			Name:  "Rose",
			Color: "red",
			Price: toPointer(-1.0),
		})
		is.Equal(err, flower.ErrResponseNegativePrice)
	})
}

func TestUpdateFlower(t *testing.T) {
	t.Run("updates only the filled fields", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		stored := flower.Flower{
			ID:        id,
			Name:      "Tulip",
			Color:     "pink",
			Price:     20000,
			Stock:     120,
			CreatedAt: time.Now().UTC().Round(time.Millisecond).Add(-time.Hour),
			UpdatedAt: time.Now().UTC().Round(time.Millisecond).Add(-time.Hour),
		}

		reqFlower := flower.UpdateFlowerRequest{
			ID:    id,
			Price: toPointer(22000.0),
		}

		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(stored, nil)
		mockRepo.EXPECT().UpdateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			is.Equal(f.ID, id)
			is.Equal(f.Name, stored.Name)   //untouched
			is.Equal(f.Color, stored.Color) //untouched
			is.Equal(f.Price, 22000.0)
			is.Equal(f.Stock, stored.Stock) //untouched
			is.True(f.CreatedAt.Equal(stored.CreatedAt))
			is.True(f.UpdatedAt.After(stored.UpdatedAt))
			return f, nil
		})

		updatedFlower, err := mS.UpdateFlower(ctx, reqFlower)
		is.NoErr(err)
		is.Equal(updatedFlower.Price, 22000.0)
	})

	t.Run("updating an unknown flower returns a not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(flower.Flower{}, flower.ErrResponseFlowerNotFound)

		_, err := mS.UpdateFlower(ctx, flower.UpdateFlowerRequest{ID: id, Name: toPointer("Ghost")})
		is.Equal(err, flower.ErrResponseFlowerNotFound)
	})

	t.Run("an invalid color on update is rejected", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(flower.Flower{ID: id, Name: "Rose", Color: "red"}, nil)

		_, err := mS.UpdateFlower(ctx, flower.UpdateFlowerRequest{ID: id, Color: toPointer("  ")})
		is.Equal(err, flower.ErrResponseInvalidColor)
	})
}

func TestListFlowers(t *testing.T) {
	t.Run("pages totals round up on inexact division", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "", "").Return(25, nil)
		mockRepo.EXPECT().ListFlowers(gomock.Any(), "", "", 3, 10).Return([]flower.Flower{{Name: "Last one"}}, nil)

		pagedFlowers, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Page: 3, PerPage: 10})
		is.NoErr(err)
		is.Equal(pagedFlowers.PageCurrent, 3)
		is.Equal(pagedFlowers.PageTotal, 3)
		is.Equal(pagedFlowers.PageSize, 10)
		is.Equal(pagedFlowers.ItemsTotal, 25)
	})

	t.Run("pages totals are exact on exact division", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "", "").Return(30, nil)
		mockRepo.EXPECT().ListFlowers(gomock.Any(), "", "", 1, 10).Return([]flower.Flower{}, nil)

		pagedFlowers, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Page: 1, PerPage: 10})
		is.NoErr(err)
		is.Equal(pagedFlowers.PageTotal, 3)
	})

	t.Run("an empty result is a valid empty page", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "nonexistent", "").Return(0, nil)

		pagedFlowers, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Search: "nonexistent", Page: 1, PerPage: 10})
		is.NoErr(err)
		is.Equal(pagedFlowers.ItemsTotal, 0)
		is.Equal(pagedFlowers.PageCurrent, 1) //the empty page echoes the requested pagination
		is.Equal(pagedFlowers.PageSize, 10)
		is.Equal(pagedFlowers.PageTotal, 0)
		is.Equal(pagedFlowers.Results, []flower.Flower{})
	})

	t.Run("a page beyond the last one returns an out of range error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "", "").Return(25, nil)

		_, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Page: 4, PerPage: 10})
		is.Equal(err, flower.ErrResponseQueryPageOutOfRange)
	})

	t.Run("a repository failure is wrapped as a repository error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "", "").Return(0, errors.New("connection refused"))

		_, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Page: 1, PerPage: 10})
		var errR flower.ErrResponse
		is.True(errors.As(err, &errR))
		is.Equal(errR.Code, flower.ErrResponseFromRepository.Code)
	})

	t.Run("a timeout on the repository surfaces the deadline error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		mockRepo.EXPECT().ListFlowersTotals(gomock.Any(), "", "").Return(0, context.DeadlineExceeded)

		_, err := mS.ListFlowers(ctx, flower.ListFlowersRequest{Page: 1, PerPage: 10})
		is.True(errors.Is(err, context.DeadlineExceeded))
	})
}

func TestAdjustStock(t *testing.T) {
	t.Run("adds stock without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		stored := flower.Flower{ID: id, Name: "Rose", Color: "red", Stock: 100}

		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(stored, nil)
		mockRepo.EXPECT().UpdateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			is.Equal(f.Stock, 150)
			return f, nil
		})

		updatedFlower, err := mS.AdjustStock(ctx, id, 50)
		is.NoErr(err)
		is.Equal(updatedFlower.Stock, 150)
	})

	t.Run("reducing below zero returns an insufficient stock error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(flower.Flower{ID: id, Stock: 10}, nil)

		_, err := mS.AdjustStock(ctx, id, -11)
		is.Equal(err, flower.ErrResponseInsufficientStock)
	})

	t.Run("reducing to the threshold fires a low stock notification", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		stored := flower.Flower{ID: id, Name: "Orchid", Color: "purple", Stock: 15}

		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(stored, nil)
		mockRepo.EXPECT().UpdateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			return f, nil
		})

		var notified sync.WaitGroup
		notified.Add(1)
		mockNtfy.EXPECT().LowStock(gomock.Any(), "Orchid", 5).DoAndReturn(func(ctx context.Context, name string, stock int) error {
			notified.Done()
			return nil
		})

		updatedFlower, err := mS.AdjustStock(ctx, id, -10)
		is.NoErr(err)
		is.Equal(updatedFlower.Stock, 5)

		notified.Wait()
	})

	t.Run("adding stock never fires a low stock notification", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := flowermock.NewMockRepository(ctrl)
		mockNtfy := flowermock.NewMockNotifier(ctrl)
		mS := flower.NewService(mockRepo, mockNtfy, notificationsTimeout)

		id := uuid.New()
		stored := flower.Flower{ID: id, Name: "Daisy", Color: "white", Stock: 2}

		mockRepo.EXPECT().GetFlowerByID(gomock.Any(), id).Return(stored, nil)
		mockRepo.EXPECT().UpdateFlower(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f flower.Flower) (flower.Flower, error) {
			return f, nil
		})

		// Stock ends at 5, still under the threshold, but the delta is positive.
		updatedFlower, err := mS.AdjustStock(ctx, id, 3)
		is.NoErr(err)
		is.Equal(updatedFlower.Stock, 5)
	})
}

func toPointer[T any](v T) *T {
	return &v
}
