package recipe

import "errors"

var (
	ErrNotFound  = errors.New("recipe not found")
	ErrForbidden = errors.New("only the author can modify a recipe")

	// Validation failures. Empty ingredient/tag lists are rejected here by
	// policy: a recipe without ingredients or tags is not publishable.
	ErrNoIngredients       = errors.New("ingredient list must not be empty")
	ErrNoTags              = errors.New("tag list must not be empty")
	ErrDuplicateIngredient = errors.New("ingredient listed twice")
	ErrUnknownIngredient   = errors.New("unknown ingredient id")
	ErrUnknownTag          = errors.New("unknown tag id")
	ErrInvalidAmount       = errors.New("ingredient amount out of bounds")
	ErrInvalidCookingTime  = errors.New("cooking time out of bounds")
	ErrInvalidImage        = errors.New("invalid image payload")
)

// IsValidationError reports whether err belongs to the validation kind.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrNoIngredients, ErrNoTags, ErrDuplicateIngredient,
		ErrUnknownIngredient, ErrUnknownTag,
		ErrInvalidAmount, ErrInvalidCookingTime, ErrInvalidImage,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
