package repository

import (
	"context"
	"fmt"
	"time"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

// kindSpec maps a relation kind onto its table and target column. All three
// tables share the same shape: a unique (user_id, target) pair.
type kindSpec struct {
	table     string
	targetCol string
}

var kindSpecs = map[domain.RelationKind]kindSpec{
	domain.KindFavorite:     {table: domain.Favorite{}.TableName(), targetCol: "recipe_id"},
	domain.KindShoppingCart: {table: domain.ShoppingCart{}.TableName(), targetCol: "recipe_id"},
	domain.KindSubscription: {table: domain.Subscription{}.TableName(), targetCol: "author_id"},
}

// RelationRepository is a single pair store shared by favorites, shopping
// carts and subscriptions. Uniqueness is enforced by the composite index on
// each table, so a duplicate Add surfaces as a constraint error even under
// concurrent callers.
type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

func (r *RelationRepository) spec(kind domain.RelationKind) (kindSpec, error) {
	s, ok := kindSpecs[kind]
	if !ok {
		return kindSpec{}, fmt.Errorf("unknown relation kind %q", kind)
	}
	return s, nil
}

// Add inserts the (user, target) pair. The caller maps a unique-constraint
// error to its AlreadyExists kind.
func (r *RelationRepository) Add(ctx context.Context, kind domain.RelationKind, userID, targetID int64) error {
	s, err := r.spec(kind)
	if err != nil {
		return err
	}

	row := map[string]interface{}{
		"user_id":    userID,
		s.targetCol:  targetID,
		"created_at": time.Now(),
	}
	return r.db.WithContext(ctx).Table(s.table).Create(row).Error
}

// Remove deletes the (user, target) pair. Returns gorm.ErrRecordNotFound if
// no such pair existed.
func (r *RelationRepository) Remove(ctx context.Context, kind domain.RelationKind, userID, targetID int64) error {
	s, err := r.spec(kind)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Exec(
		"DELETE FROM "+s.table+" WHERE user_id = ? AND "+s.targetCol+" = ?",
		userID, targetID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists probes membership of the (user, target) pair.
func (r *RelationRepository) Exists(ctx context.Context, kind domain.RelationKind, userID, targetID int64) (bool, error) {
	s, err := r.spec(kind)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Table(s.table).
		Where("user_id = ? AND "+s.targetCol+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of pairs the user holds for the kind.
func (r *RelationRepository) Count(ctx context.Context, kind domain.RelationKind, userID int64) (int64, error) {
	s, err := r.spec(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).Table(s.table).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
