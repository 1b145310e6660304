package relation

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// RecipeGate is implemented by the recipe repository to check targets of
// favorite and shopping-cart relations.
type RecipeGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

// UserGate is implemented by the user repository to check subscription targets.
type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service toggles membership in a (user, target) relation set. One shared
// algorithm serves favorites, shopping carts and subscriptions; the unique
// index on each table is the only concurrency-correctness mechanism, so a race
// between two Adds yields exactly one success and one ErrAlreadyExists.
type Service struct {
	relations *repository.RelationRepository
	recipes   RecipeGate
	users     UserGate
}

func NewService(relations *repository.RelationRepository, recipes RecipeGate, users UserGate) *Service {
	return &Service{relations: relations, recipes: recipes, users: users}
}

func (s *Service) Add(ctx context.Context, kind domain.RelationKind, userID, targetID int64) error {
	if kind == domain.KindSubscription && userID == targetID {
		return ErrSelfSubscribe
	}

	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return err
	}

	if err := s.relations.Add(ctx, kind, userID, targetID); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, kind domain.RelationKind, userID, targetID int64) error {
	err := s.relations.Remove(ctx, kind, userID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Exists(ctx context.Context, kind domain.RelationKind, userID, targetID int64) (bool, error) {
	return s.relations.Exists(ctx, kind, userID, targetID)
}

func (s *Service) checkTarget(ctx context.Context, kind domain.RelationKind, targetID int64) error {
	var err error
	switch kind {
	case domain.KindSubscription:
		_, err = s.users.GetByID(ctx, targetID)
	default:
		_, err = s.recipes.GetByID(ctx, targetID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTargetNotFound
	}
	return err
}

// isUniqueViolation covers both drivers: PgError 23505 on PostgreSQL and the
// constraint message on SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
