package flower

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

type ServiceAPI interface {
	CreateFlower(ctx context.Context, entry CreateFlowerRequest) (Flower, error)
	GetFlower(ctx context.Context, id uuid.UUID) (Flower, error)
	UpdateFlower(ctx context.Context, entry UpdateFlowerRequest) (Flower, error)
	DeleteFlower(ctx context.Context, id uuid.UUID) error
	ListFlowers(ctx context.Context, params ListFlowersRequest) (PagedFlowers, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (Flower, error)
}

type Repository interface {
	CreateFlower(ctx context.Context, entry Flower) (Flower, error)
	GetFlowerByID(ctx context.Context, id uuid.UUID) (Flower, error)
	UpdateFlower(ctx context.Context, entry Flower) (Flower, error)
	DeleteFlower(ctx context.Context, id uuid.UUID) error
	ListFlowers(ctx context.Context, search, color string, page, pageSize int) ([]Flower, error)
	ListFlowersTotals(ctx context.Context, search, color string) (int, error)
}

type Notifier interface {
	FlowerCreated(ctx context.Context, name string, stock int) error
	LowStock(ctx context.Context, name string, stock int) error
}

type Service struct {
	repo        Repository
	ntfy        Notifier
	ntfyTimeout time.Duration
}

func NewService(repo Repository, ntfy Notifier, notificationsTimeout time.Duration) *Service {
	return &Service{repo: repo, ntfy: ntfy, ntfyTimeout: notificationsTimeout}
}

type CreateFlowerRequest struct {
	Name        string
	Color       string
	Description *string
	Price       *float64
	Stock       *int
}

type UpdateFlowerRequest struct {
	ID          uuid.UUID
	Name        *string
	Color       *string
	Description *string
	Price       *float64
	Stock       *int
}

type ListFlowersRequest struct {
	Search  string
	Color   string
	Page    int
	PerPage int
}

type PagedFlowers struct {
	PageCurrent int
	PageTotal   int
	PageSize    int
	ItemsTotal  int
	Results     []Flower
}

/* Validates the entry, assigns an ID and timestamps and stores the new flower. */
func (s *Service) CreateFlower(ctx context.Context, entry CreateFlowerRequest) (Flower, error) {
	name, err := ValidateName(entry.Name)
	if err != nil {
		return Flower{}, err
	}
	color, err := ValidateColor(entry.Color)
	if err != nil {
		return Flower{}, err
	}

	// Price and stock default to zero when absent.
	var price float64
	if entry.Price != nil {
		price = *entry.Price
	}
	if price < 0 {
		return Flower{}, ErrResponseNegativePrice
	}
	var stock int
	if entry.Stock != nil {
		stock = *entry.Stock
	}
	if stock < 0 {
		return Flower{}, ErrResponseNegativeStock
	}

	createdAt := time.Now().UTC().Round(time.Millisecond)
	newFlower := Flower{
		ID:          uuid.New(),
		Name:        name,
		Color:       color,
		Description: entry.Description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	storedFlower, err := s.repo.CreateFlower(ctx, newFlower)
	if err != nil {
		return Flower{}, err
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), s.ntfyTimeout)
		defer cancel()
		if err := s.ntfy.FlowerCreated(notifyCtx, storedFlower.Name, storedFlower.Stock); err != nil {
			slog.Error("notifying flower created", "error", err)
		}
	}()

	return storedFlower, nil
}

func (s *Service) GetFlower(ctx context.Context, id uuid.UUID) (Flower, error) {
	return s.repo.GetFlowerByID(ctx, id)
}

/* Validates the filled entry fields and updates the stored flower with them. */
func (s *Service) UpdateFlower(ctx context.Context, entry UpdateFlowerRequest) (Flower, error) {
	storedFlower, err := s.repo.GetFlowerByID(ctx, entry.ID)
	if err != nil {
		return Flower{}, err
	}

	if entry.Name != nil {
		storedFlower.Name, err = ValidateName(*entry.Name)
		if err != nil {
			return Flower{}, err
		}
	}
	if entry.Color != nil {
		storedFlower.Color, err = ValidateColor(*entry.Color)
		if err != nil {
			return Flower{}, err
		}
	}
	if entry.Description != nil {
		storedFlower.Description = entry.Description
	}
	if entry.Price != nil {
		if *entry.Price < 0 {
			return Flower{}, ErrResponseNegativePrice
		}
		storedFlower.Price = *entry.Price
	}
	if entry.Stock != nil {
		if *entry.Stock < 0 {
			return Flower{}, ErrResponseNegativeStock
		}
		storedFlower.Stock = *entry.Stock
	}

	storedFlower.UpdatedAt = time.Now().UTC().Round(time.Millisecond)
	return s.repo.UpdateFlower(ctx, storedFlower)
}

func (s *Service) DeleteFlower(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFlower(ctx, id)
}

/* Returns a page of the stored flowers, filtered by the request parameters. */
func (s *Service) ListFlowers(ctx context.Context, params ListFlowersRequest) (PagedFlowers, error) {
	itemsTotal, err := s.repo.ListFlowersTotals(ctx, params.Search, params.Color)
	if err != nil {
		return PagedFlowers{}, s.repositoryError("ListFlowersTotals", err)
	}
	if itemsTotal == 0 {
		// An empty page still echoes the requested pagination.
		return PagedFlowers{
			PageCurrent: params.Page,
			PageSize:    params.PerPage,
			Results:     []Flower{},
		}, nil
	}

	pagesTotal := int(math.Ceil(float64(itemsTotal) / float64(params.PerPage)))
	if params.Page > pagesTotal {
		return PagedFlowers{}, ErrResponseQueryPageOutOfRange
	}

	returnedFlowers, err := s.repo.ListFlowers(ctx, params.Search, params.Color, params.Page, params.PerPage)
	if err != nil {
		return PagedFlowers{}, s.repositoryError("ListFlowers", err)
	}

	return PagedFlowers{
		PageCurrent: params.Page,
		PageTotal:   pagesTotal,
		PageSize:    params.PerPage,
		ItemsTotal:  itemsTotal,
		Results:     returnedFlowers,
	}, nil
}

/* Adds delta units to the flower stock. A negative delta removes stock and fails if it would drive the stock negative. */
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (Flower, error) {
	storedFlower, err := s.repo.GetFlowerByID(ctx, id)
	if err != nil {
		return Flower{}, err
	}

	newStock := storedFlower.Stock + delta
	if newStock < 0 {
		return Flower{}, ErrResponseInsufficientStock
	}

	storedFlower.Stock = newStock
	storedFlower.UpdatedAt = time.Now().UTC().Round(time.Millisecond)

	updatedFlower, err := s.repo.UpdateFlower(ctx, storedFlower)
	if err != nil {
		return Flower{}, err
	}

	if delta < 0 && updatedFlower.Stock <= LowStockThreshold {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), s.ntfyTimeout)
			defer cancel()
			if err := s.ntfy.LowStock(notifyCtx, updatedFlower.Name, updatedFlower.Stock); err != nil {
				slog.Error("notifying low stock", "error", err)
			}
		}()
	}

	return updatedFlower, nil
}

func (s *Service) repositoryError(call string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timeout on call to %s: %w", call, err)
	}
	return ErrResponse{
		Code:    ErrResponseFromRepository.Code,
		Message: ErrResponseFromRepository.Message + err.Error(),
	}
}
