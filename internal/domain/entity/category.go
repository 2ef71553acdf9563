// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3B82F6"

// Category represents a transaction category in the Budget App system.
// Categories are shared reference data; names are globally unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Defaulting of the color is applied in the application layer before calling
// this constructor.
func NewCategory(name string, categoryType CategoryType, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryUsage represents how much a category is referenced.
type CategoryUsage struct {
	TransactionCount int
	BudgetCount      int
}
