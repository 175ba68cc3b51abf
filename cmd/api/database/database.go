package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flowers-service/cmd/api/flower"
	"github.com/flowers-service/cmd/api/metrics"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/google/uuid"
	"github.com/lib/pq"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	exc *Executor
}

type Executor struct {
	DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		exc: NewExc(db),
	}
}

func NewExc(dbtx DBTX) *Executor {
	return &Executor{DBTX: dbtx}
}

/* Connects to the database through a connection string and returns a pointer to a valid DB object (*sql.DB). */
func ConnectDb(connStr string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	slog.Info("successfully connected to database")
	return sqlDB, nil
}

func MigrationUp(store *Store, path string) error {
	driver, err := postgres.WithInstance(store.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

const flowerColumns = `id, name, color, description, price, stock, created_at, updated_at`

/* Stores the flower into the database, checks and returns it if succeed. */
func (store *Store) CreateFlower(ctx context.Context, entry flower.Flower) (flower.Flower, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	sqlStatement := `
	INSERT INTO flowers (id, name, color, description, price, stock, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + flowerColumns
	createdRow := store.exc.QueryRowContext(ctx, sqlStatement, entry.ID, entry.Name, entry.Color, entry.Description, entry.Price, entry.Stock, entry.CreatedAt, entry.UpdatedAt)
	flowerToReturn, err := scanFlower(createdRow)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return flower.Flower{}, fmt.Errorf("storing flower on db: %w", flower.ErrResponseFlowerAlreadyExists)
		}
		return flower.Flower{}, fmt.Errorf("storing flower on db: %w", err)
	}

	return flowerToReturn, nil
}

/* Searches a flower in database based on ID and returns it if succeed. */
func (store *Store) GetFlowerByID(ctx context.Context, id uuid.UUID) (flower.Flower, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	sqlStatement := `SELECT ` + flowerColumns + `
	FROM flowers
	WHERE id = $1;`
	foundRow := store.exc.QueryRowContext(ctx, sqlStatement, id)
	flowerToReturn, err := scanFlower(foundRow)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return flower.Flower{}, fmt.Errorf("searching by ID: %w", flower.ErrResponseFlowerNotFound)
		default:
			return flower.Flower{}, fmt.Errorf("searching by ID: %w", err)
		}
	}

	return flowerToReturn, nil
}

/* Stores the updated flower into the database, checks and returns it if succeed. */
func (store *Store) UpdateFlower(ctx context.Context, entry flower.Flower) (flower.Flower, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	sqlStatement := `
	UPDATE flowers
	SET name = $2, color = $3, description = $4, price = $5, stock = $6, updated_at = $7
	WHERE id = $1
	RETURNING ` + flowerColumns
	updatedRow := store.exc.QueryRowContext(ctx, sqlStatement, entry.ID, entry.Name, entry.Color, entry.Description, entry.Price, entry.Stock, entry.UpdatedAt)
	flowerToReturn, err := scanFlower(updatedRow)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return flower.Flower{}, fmt.Errorf("updating on db: %w", flower.ErrResponseFlowerNotFound)
		default:
			return flower.Flower{}, fmt.Errorf("updating on db: %w", err)
		}
	}

	return flowerToReturn, nil
}

func (store *Store) DeleteFlower(ctx context.Context, id uuid.UUID) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	sqlStatement := `
	DELETE FROM flowers
	WHERE id = $1;`
	result, err := store.exc.ExecContext(ctx, sqlStatement, id)
	if err != nil {
		return fmt.Errorf("deleting flower from db: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting flower from db: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("deleting flower from db: %w", flower.ErrResponseFlowerNotFound)
	}
	return nil
}

/* Returns filtered content of database in a list of flowers, most recent first. */
func (store *Store) ListFlowers(ctx context.Context, search, color string, page, pageSize int) ([]flower.Flower, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	if search != "" {
		search = fmt.Sprint("%", search, "%")
	} else {
		search = "%"
	}

	limit := pageSize
	offset := (page - 1) * pageSize

	sqlStatement := fmt.Sprint(`SELECT `, flowerColumns, ` FROM flowers
	WHERE name ILIKE $1
	AND ($2 = '' OR LOWER(color) = LOWER($2))
	ORDER BY created_at DESC
	LIMIT `, limit, ` OFFSET `, offset, ` ;`)

	rows, err := store.exc.QueryContext(ctx, sqlStatement, search, color)
	if err != nil {
		return nil, fmt.Errorf("listing flowers from db: %w", err)
	}
	defer rows.Close()
	flowersList := []flower.Flower{}
	for rows.Next() {
		var flowerToReturn flower.Flower
		err = rows.Scan(&flowerToReturn.ID, &flowerToReturn.Name, &flowerToReturn.Color, &flowerToReturn.Description, &flowerToReturn.Price, &flowerToReturn.Stock, &flowerToReturn.CreatedAt, &flowerToReturn.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("listing flowers from db: %w", err)
		}

		flowersList = append(flowersList, flowerToReturn)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("listing flowers from db: %w", err)
	}

	return flowersList, nil
}

/* Counts how many rows in db fit the specified filter parameters. */
func (store *Store) ListFlowersTotals(ctx context.Context, search, color string) (int, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	if search != "" {
		search = fmt.Sprint("%", search, "%")
	} else {
		search = "%"
	}

	sqlStatement := `SELECT COUNT(*) FROM flowers
	WHERE name ILIKE $1
	AND ($2 = '' OR LOWER(color) = LOWER($2));`

	row := store.exc.QueryRowContext(ctx, sqlStatement, search, color)
	var count int
	err := row.Scan(&count)
	if err != nil {
		return count, fmt.Errorf("counting flowers from db: %w", err)
	}

	return count, nil
}

func scanFlower(row *sql.Row) (flower.Flower, error) {
	var f flower.Flower
	err := row.Scan(&f.ID, &f.Name, &f.Color, &f.Description, &f.Price, &f.Stock, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return flower.Flower{}, err
	}
	return f, nil
}
