package user

import (
	"context"
	"errors"

	"foodgram/internal/domain"
	"foodgram/internal/modules/relation"
	"foodgram/internal/repository"

	"gorm.io/gorm"
)

// recipesPerAuthor caps the short recipe list embedded in each subscription
// entry; the full list is available through the recipes endpoint.
const recipesPerAuthor = 3

var ErrNotFound = errors.New("user not found")

type Service struct {
	users     *repository.UserRepository
	recipes   *repository.RecipeRepository
	relations *relation.Service
}

func NewService(users *repository.UserRepository, recipes *repository.RecipeRepository, relations *relation.Service) *Service {
	return &Service{users: users, recipes: recipes, relations: relations}
}

func (s *Service) Get(ctx context.Context, viewerID, userID int64) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, viewerID, u)
}

func (s *Service) List(ctx context.Context, viewerID int64, limit, offset int) (*UserListResponse, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		resp, err := s.toResponse(ctx, viewerID, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &UserListResponse{Users: out, Total: total, Page: page, Limit: limit}, nil
}

// Delete removes the account with everything it owns: recipes (cascading to
// their ingredient amounts, favorites, cart entries and tag links) and the
// user's join rows on both sides.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}

// Subscribe and Unsubscribe delegate to the relationship manager; the
// self-subscription and duplicate guards live there.
func (s *Service) Subscribe(ctx context.Context, userID, authorID int64) error {
	return s.relations.Add(ctx, domain.KindSubscription, userID, authorID)
}

func (s *Service) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	return s.relations.Remove(ctx, domain.KindSubscription, userID, authorID)
}

// Subscriptions returns the authors the user follows, each with a short form
// of their recipes and the total recipe count.
func (s *Service) Subscriptions(ctx context.Context, userID int64, limit, offset int) (*SubscriptionListResponse, error) {
	authors, total, err := s.users.ListSubscribedAuthors(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		recipes, count, err := s.recipes.ListShortByAuthor(ctx, authors[i].ID, recipesPerAuthor)
		if err != nil {
			return nil, err
		}

		short := make([]ShortRecipe, 0, len(recipes))
		for _, r := range recipes {
			short = append(short, ShortRecipe{
				ID:          r.ID,
				Name:        r.Name,
				Image:       r.Image,
				CookingTime: r.CookingTime,
			})
		}

		out = append(out, SubscriptionResponse{
			UserResponse: UserResponse{
				ID:           authors[i].ID,
				Email:        authors[i].Email,
				Username:     authors[i].Username,
				FirstName:    authors[i].FirstName,
				LastName:     authors[i].LastName,
				IsSubscribed: true,
			},
			Recipes:      short,
			RecipesCount: count,
		})
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return &SubscriptionListResponse{Authors: out, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) toResponse(ctx context.Context, viewerID int64, u *domain.User) (*UserResponse, error) {
	subscribed := false
	if viewerID > 0 && viewerID != u.ID {
		var err error
		subscribed, err = s.relations.Exists(ctx, domain.KindSubscription, viewerID, u.ID)
		if err != nil {
			return nil, err
		}
	}
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}, nil
}
