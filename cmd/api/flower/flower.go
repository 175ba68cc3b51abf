package flower

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	NameMaxLen  = 100
	ColorMaxLen = 50
)

// LowStockThreshold is the stock level at or below which a
// low stock notification is fired.
const LowStockThreshold = 10

type Flower struct {
	ID          uuid.UUID
	Name        string
	Color       string
	Description *string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

/* Validates and normalizes a flower name: trimmed, non-blank, at most 100 characters. */
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrResponseInvalidName
	}
	if len(name) > NameMaxLen {
		return "", ErrResponseInvalidName
	}
	return name, nil
}

/* Validates and normalizes a flower color: trimmed, lowercased, non-blank, at most 50 characters. */
func ValidateColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return "", ErrResponseInvalidColor
	}
	if len(color) > ColorMaxLen {
		return "", ErrResponseInvalidColor
	}
	return strings.ToLower(color), nil
}
