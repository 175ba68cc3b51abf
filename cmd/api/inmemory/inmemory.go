package inmemory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/flowers-service/cmd/api/flower"
	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

// Every method takes its own transaction, so a single store
// instance is safe to share between request goroutines.
type InMemoryStore struct {
	db *memdb.MemDB
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"flower": {
				Name: "flower",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"name": {
						Name:    "name",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
					"color": {
						Name:    "color",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "Color"},
					},
				},
			},
		},
	}

	errV := schema.Validate()
	if errV != nil {
		log.Println("schema validating error: ", errV)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

type AdaptedFlower struct {
	ID          string
	Name        string
	Color       string
	Description *string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func adaptFlowerIdToString(flowerEntry flower.Flower) AdaptedFlower {
	return AdaptedFlower{
		ID:          flowerEntry.ID.String(),
		Name:        flowerEntry.Name,
		Color:       flowerEntry.Color,
		Description: flowerEntry.Description,
		Price:       flowerEntry.Price,
		Stock:       flowerEntry.Stock,
		CreatedAt:   flowerEntry.CreatedAt,
		UpdatedAt:   flowerEntry.UpdatedAt,
	}
}

func adaptFlowerIdToUUID(adptFlower AdaptedFlower) flower.Flower {
	return flower.Flower{
		ID:          uuid.MustParse(adptFlower.ID),
		Name:        adptFlower.Name,
		Color:       adptFlower.Color,
		Description: adptFlower.Description,
		Price:       adptFlower.Price,
		Stock:       adptFlower.Stock,
		CreatedAt:   adptFlower.CreatedAt,
		UpdatedAt:   adptFlower.UpdatedAt,
	}
}

/* Seed fills the store with the same ten flowers the database migration inserts,
so the service behaves alike with or without a real database behind it. */
func (store *InMemoryStore) Seed() error {
	type seedRow struct {
		id          string
		name        string
		color       string
		description string
		price       float64
		stock       int
	}
	rows := []seedRow{
		{"550e8400-e29b-41d4-a716-446655440001", "Rose", "red", "A classic red rose", 25000, 100},
		{"550e8400-e29b-41d4-a716-446655440002", "Lily", "white", "An elegant white lily", 30000, 75},
		{"550e8400-e29b-41d4-a716-446655440003", "Tulip", "pink", "A fresh pink tulip", 20000, 120},
		{"550e8400-e29b-41d4-a716-446655440004", "Sunflower", "yellow", "A bright sunflower", 15000, 80},
		{"550e8400-e29b-41d4-a716-446655440005", "Orchid", "purple", "An exotic purple orchid", 50000, 40},
		{"550e8400-e29b-41d4-a716-446655440006", "Jasmine", "white", "A fragrant white jasmine", 18000, 90},
		{"550e8400-e29b-41d4-a716-446655440007", "Daisy", "white", "A cheerful white daisy", 12000, 150},
		{"550e8400-e29b-41d4-a716-446655440008", "Lavender", "purple", "A calming lavender sprig", 22000, 60},
		{"550e8400-e29b-41d4-a716-446655440009", "Chrysanthemum", "yellow", "A golden chrysanthemum", 17000, 110},
		{"550e8400-e29b-41d4-a716-446655440010", "Hydrangea", "blue", "A lush blue hydrangea", 35000, 45},
	}

	txn := store.db.Txn(true)
	defer txn.Abort()

	// Each row gets a later timestamp than the previous one,
	// matching the ordering the migration seed produces.
	base := time.Date(2024, time.December, 11, 0, 0, 0, 0, time.UTC)
	for i, r := range rows {
		description := r.description
		ts := base.Add(time.Duration(i+1) * time.Second)
		err := txn.Insert("flower", AdaptedFlower{
			ID:          r.id,
			Name:        r.name,
			Color:       r.color,
			Description: &description,
			Price:       r.price,
			Stock:       r.stock,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
		if err != nil {
			return fmt.Errorf("seeding flowers on db: %w", err)
		}
	}

	txn.Commit()
	return nil
}

func (store *InMemoryStore) CreateFlower(ctx context.Context, flowerEntry flower.Flower) (flower.Flower, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("flower", "id", flowerEntry.ID.String())
	if err != nil {
		return flower.Flower{}, fmt.Errorf("storing flower on db: %w", err)
	}
	if raw != nil {
		return flower.Flower{}, fmt.Errorf("storing flower on db: %w", flower.ErrResponseFlowerAlreadyExists)
	}

	err = txn.Insert("flower", adaptFlowerIdToString(flowerEntry))
	if err != nil {
		return flower.Flower{}, fmt.Errorf("storing flower on db: %w", err)
	}

	txn.Commit()
	return flowerEntry, nil
}

func (store *InMemoryStore) GetFlowerByID(ctx context.Context, id uuid.UUID) (flower.Flower, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("flower", "id", id.String())
	if err != nil {
		return flower.Flower{}, fmt.Errorf("searching by ID: %w", err)
	}
	if raw == nil {
		return flower.Flower{}, fmt.Errorf("searching by ID: %w", flower.ErrResponseFlowerNotFound)
	}

	return adaptFlowerIdToUUID(raw.(AdaptedFlower)), nil
}

func (store *InMemoryStore) UpdateFlower(ctx context.Context, flowerEntry flower.Flower) (flower.Flower, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("flower", "id", flowerEntry.ID.String())
	if err != nil {
		return flower.Flower{}, fmt.Errorf("updating flower on db: %w", err)
	}
	if raw == nil {
		return flower.Flower{}, fmt.Errorf("updating flower on db: %w", flower.ErrResponseFlowerNotFound)
	}

	updatedFlower := raw.(AdaptedFlower)
	updatedFlower.Name = flowerEntry.Name
	updatedFlower.Color = flowerEntry.Color
	updatedFlower.Description = flowerEntry.Description
	updatedFlower.Price = flowerEntry.Price
	updatedFlower.Stock = flowerEntry.Stock
	//CreatedAt will not change
	updatedFlower.UpdatedAt = flowerEntry.UpdatedAt

	if err := txn.Insert("flower", updatedFlower); err != nil {
		return flower.Flower{}, err
	}

	txn.Commit()
	return adaptFlowerIdToUUID(updatedFlower), nil
}

func (store *InMemoryStore) DeleteFlower(ctx context.Context, id uuid.UUID) error {
	txn := store.db.Txn(true)
	defer txn.Abort()

	count, err := txn.DeleteAll("flower", "id", id.String())
	if err != nil {
		return fmt.Errorf("deleting flower from db: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("deleting flower from db: %w", flower.ErrResponseFlowerNotFound)
	}

	txn.Commit()
	return nil
}

func (store *InMemoryStore) ListFlowers(ctx context.Context, search, color string, page, pageSize int) ([]flower.Flower, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	flowers, err := filterFlowers(txn, search, color)
	if err != nil {
		return []flower.Flower{}, fmt.Errorf("listing flowers from db: %w", err)
	}

	// Most recent first, same ordering the SQL store applies.
	sort.Slice(flowers, func(i, j int) bool {
		return flowers[i].CreatedAt.After(flowers[j].CreatedAt)
	})

	// Apply pagination
	start := (page - 1) * pageSize
	if start > len(flowers) {
		return []flower.Flower{}, nil
	}

	end := start + pageSize
	if end > len(flowers) {
		end = len(flowers)
	}

	return flowers[start:end], nil
}

func (store *InMemoryStore) ListFlowersTotals(ctx context.Context, search, color string) (int, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	flowers, err := filterFlowers(txn, search, color)
	if err != nil {
		return 0, fmt.Errorf("counting flowers from db: %w", err)
	}

	return len(flowers), nil
}

func filterFlowers(txn *memdb.Txn, search, color string) ([]flower.Flower, error) {
	it, err := txn.Get("flower", "id")
	if err != nil {
		return nil, err
	}

	// The color filter is exact but case-insensitive, same as the SQL store.
	color = strings.ToLower(color)

	flowers := []flower.Flower{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		f := obj.(AdaptedFlower)
		if search != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(search)) {
			continue
		}
		if color != "" && strings.ToLower(f.Color) != color {
			continue
		}
		flowers = append(flowers, adaptFlowerIdToUUID(f))
	}

	return flowers, nil
}
