package shoppinglist

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/repository"
)

const header = "Shopping list:"

// Service renders the consolidated ingredient list for a user's cart. Pure
// read: safe to call repeatedly, no state is mutated.
type Service struct {
	carts *repository.ShoppingListRepository
}

func NewService(carts *repository.ShoppingListRepository) *Service {
	return &Service{carts: carts}
}

// Build returns the list as a plain-text blob, one "<name> - <amount> <unit>"
// line per distinct (name, unit) pair. An empty cart yields the header only.
func (s *Service) Build(ctx context.Context, userID int64) (string, error) {
	rows, err := s.carts.SumCartIngredients(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s - %d %s\n", row.Name, row.Amount, row.MeasurementUnit)
	}
	return b.String(), nil
}
