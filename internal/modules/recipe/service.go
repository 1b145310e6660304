package recipe

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationChecker is implemented by the relation service; used for the
// is_favorited / is_in_shopping_cart / is_subscribed projections.
type RelationChecker interface {
	Exists(ctx context.Context, kind domain.RelationKind, userID, targetID int64) (bool, error)
}

type Service struct {
	recipes     *repository.RecipeRepository
	ingredients *repository.IngredientRepository
	tags        *repository.TagRepository
	relations   RelationChecker
	mediaDir    string
}

func NewService(
	recipes *repository.RecipeRepository,
	ingredients *repository.IngredientRepository,
	tags *repository.TagRepository,
	relations RelationChecker,
	mediaDir string,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		tags:        tags,
		relations:   relations,
		mediaDir:    mediaDir,
	}
}

// Create persists the recipe together with its ingredient amounts and tag set
// in one transaction. Partial application is never observable.
func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (*RecipeResponse, error) {
	items, tags, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	image, err := s.saveImage(req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       image,
	}
	if err := s.recipes.Create(ctx, recipe, items, tags); err != nil {
		return nil, err
	}

	return s.Get(ctx, authorID, recipe.ID)
}

// Update replaces the entire ingredient list and tag set. Only the author may
// update; the replace-all semantics is deliberate, there is no diffing.
func (s *Service) Update(ctx context.Context, userID, recipeID int64, req UpdateRecipeRequest) (*RecipeResponse, error) {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.AuthorID != userID {
		return nil, ErrForbidden
	}

	items, tags, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	image := existing.Image
	if req.Image != "" {
		if image, err = s.saveImage(req.Image); err != nil {
			return nil, err
		}
	}

	recipe := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       image,
	}
	if err := s.recipes.Update(ctx, recipe, items, tags); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, recipeID)
}

// Delete removes the recipe and cascades to its ingredient amounts, favorites
// and cart entries.
func (s *Service) Delete(ctx context.Context, userID, recipeID int64) error {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if recipe.AuthorID != userID {
		return ErrForbidden
	}
	return s.recipes.Delete(ctx, recipeID)
}

// IsOwner is the ownership hook consumed by the boundary layer.
func (s *Service) IsOwner(ctx context.Context, userID, recipeID int64) (bool, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return recipe.AuthorID == userID, nil
}

// Get returns the full projection. viewerID == 0 means anonymous: the
// per-user flags come back false.
func (s *Service) Get(ctx context.Context, viewerID, recipeID int64) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, viewerID, recipe)
}

func (s *Service) List(ctx context.Context, f repository.RecipeFilter) (*RecipeListResponse, error) {
	recipes, total, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.toResponse(ctx, f.ViewerID, &recipes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}

	page := 1
	if f.Limit > 0 {
		page = f.Offset/f.Limit + 1
	}
	return &RecipeListResponse{
		Recipes: out,
		Total:   total,
		Page:    page,
		Limit:   f.Limit,
	}, nil
}

// validate checks bounds, duplicates and foreign references, and resolves the
// rows to insert. Shared by Create and Update.
func (s *Service) validate(ctx context.Context, req CreateRecipeRequest) ([]domain.RecipeIngredient, []domain.Tag, error) {
	if req.CookingTime < domain.MinCookingTime || req.CookingTime > domain.MaxCookingTime {
		return nil, nil, ErrInvalidCookingTime
	}
	if len(req.Ingredients) == 0 {
		return nil, nil, ErrNoIngredients
	}
	if len(req.Tags) == 0 {
		return nil, nil, ErrNoTags
	}

	ids := make([]int64, 0, len(req.Ingredients))
	seen := make(map[int64]bool, len(req.Ingredients))
	for _, entry := range req.Ingredients {
		if entry.Amount < domain.MinAmount || entry.Amount > domain.MaxAmount {
			return nil, nil, fmt.Errorf("%w: amount %d for ingredient %d", ErrInvalidAmount, entry.Amount, entry.ID)
		}
		if seen[entry.ID] {
			return nil, nil, fmt.Errorf("%w: id %d", ErrDuplicateIngredient, entry.ID)
		}
		seen[entry.ID] = true
		ids = append(ids, entry.ID)
	}

	known, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	items := make([]domain.RecipeIngredient, 0, len(req.Ingredients))
	for _, entry := range req.Ingredients {
		if _, ok := known[entry.ID]; !ok {
			return nil, nil, fmt.Errorf("%w: id %d", ErrUnknownIngredient, entry.ID)
		}
		items = append(items, domain.RecipeIngredient{
			IngredientID: entry.ID,
			Amount:       entry.Amount,
		})
	}

	tags, err := s.tags.GetByIDs(ctx, req.Tags)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(req.Tags) {
		return nil, nil, ErrUnknownTag
	}

	return items, tags, nil
}

func (s *Service) toResponse(ctx context.Context, viewerID int64, r *domain.Recipe) (*RecipeResponse, error) {
	var isFavorited, inCart, subscribed bool
	if viewerID > 0 {
		var err error
		if isFavorited, err = s.relations.Exists(ctx, domain.KindFavorite, viewerID, r.ID); err != nil {
			return nil, err
		}
		if inCart, err = s.relations.Exists(ctx, domain.KindShoppingCart, viewerID, r.ID); err != nil {
			return nil, err
		}
		if subscribed, err = s.relations.Exists(ctx, domain.KindSubscription, viewerID, r.AuthorID); err != nil {
			return nil, err
		}
	}

	ingredients := make([]IngredientInRecipe, 0, len(r.Ingredients))
	for _, item := range r.Ingredients {
		row := IngredientInRecipe{
			ID:     item.IngredientID,
			Amount: item.Amount,
		}
		if item.Ingredient != nil {
			row.Name = item.Ingredient.Name
			row.MeasurementUnit = item.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, row)
	}

	author := AuthorResponse{IsSubscribed: subscribed}
	if r.Author != nil {
		author.ID = r.Author.ID
		author.Email = r.Author.Email
		author.Username = r.Author.Username
		author.FirstName = r.Author.FirstName
		author.LastName = r.Author.LastName
	}

	tags := r.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	return &RecipeResponse{
		ID:               r.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}, nil
}

// saveImage decodes a base64 data URI and stores it under the media dir with
// a generated filename. Non-data strings are treated as already-stored paths.
func (s *Service) saveImage(image string) (string, error) {
	if image == "" {
		return "", nil
	}
	if !strings.HasPrefix(image, "data:") {
		return image, nil
	}

	rest, ok := strings.CutPrefix(image, "data:image/")
	if !ok {
		return "", ErrInvalidImage
	}
	ext, payload, ok := strings.Cut(rest, ";base64,")
	if !ok || ext == "" {
		return "", ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dir := filepath.Join(s.mediaDir, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return filepath.Join("recipes", name), nil
}
