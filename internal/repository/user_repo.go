package repository

import (
	"context"
	"strings"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var users []domain.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("username")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// ListSubscribedAuthors returns the authors the user follows, ordered by
// username for stable pagination.
func (r *UserRepository) ListSubscribedAuthors(ctx context.Context, userID int64, limit, offset int) ([]domain.User, int64, error) {
	var authors []domain.User
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("users.username")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// Delete removes the user together with their recipes and every join row
// referencing them on either side, in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Rows hanging off the user's own recipes.
		sub := "SELECT id FROM recipes WHERE author_id = ?"
		for _, stmt := range []string{
			"DELETE FROM recipe_ingredients WHERE recipe_id IN (" + sub + ")",
			"DELETE FROM favorites WHERE recipe_id IN (" + sub + ")",
			"DELETE FROM shopping_carts WHERE recipe_id IN (" + sub + ")",
			"DELETE FROM recipe_tags WHERE recipe_id IN (" + sub + ")",
		} {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM recipes WHERE author_id = ?", id).Error; err != nil {
			return err
		}

		// The user's own join rows, both sides for subscriptions.
		if err := tx.Exec("DELETE FROM favorites WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM shopping_carts WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM subscriptions WHERE user_id = ? OR author_id = ?", id, id).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.User{}, id).Error
	})
}
