package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/ingredient"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/relation"
	"foodgram/internal/modules/shoppinglist"
	"foodgram/internal/modules/tag"
	"foodgram/internal/modules/user"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

// TestListResponse covers endpoints whose data payload is a bare array
// (ingredient and tag catalogs).
type TestListResponse struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	dsn := "file:e2e_" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := database.Connect(dsn)
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Ingredient{},
		&domain.Tag{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Subscription{},
	))

	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tagRepo := repository.NewTagRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	cartRepo := repository.NewShoppingListRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))

	relationService := relation.NewService(relationRepo, recipeRepo, userRepo)
	relationHandler := relation.NewHandler(relationService, recipeRepo)

	recipeService := recipe.NewService(recipeRepo, ingredientRepo, tagRepo, relationService, t.TempDir())
	recipeHandler := recipe.NewHandler(recipeService)

	userHandler := user.NewHandler(user.NewService(userRepo, recipeRepo, relationService))
	listHandler := shoppinglist.NewHandler(shoppinglist.NewService(cartRepo))
	ingredientHandler := ingredient.NewHandler(ingredientRepo)
	tagHandler := tag.NewHandler(tagRepo)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1)

	read := v1.Group("/")
	read.Use(middleware.OptionalAuth(j))
	{
		recipeHandler.RegisterReadRoutes(read)
		userHandler.RegisterReadRoutes(read)
		ingredientHandler.RegisterRoutes(read)
		tagHandler.RegisterRoutes(read)
	}

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	{
		recipeHandler.RegisterWriteRoutes(protected)
		relationHandler.RegisterRoutes(protected)
		listHandler.RegisterRoutes(protected)
		userHandler.RegisterProtectedRoutes(protected)
		authHandler.RegisterProtectedRoutes(protected)
	}

	// Catalog entries are admin/seed managed, create them directly
	ingredients := []domain.Ingredient{
		{Name: "Salt", MeasurementUnit: "g"},
		{Name: "Flour", MeasurementUnit: "g"},
		{Name: "Milk", MeasurementUnit: "ml"},
	}
	for i := range ingredients {
		require.NoError(t, db.Create(&ingredients[i]).Error)
	}
	tags := []domain.Tag{
		{Name: "Breakfast", Slug: "breakfast"},
		{Name: "Dinner", Slug: "dinner"},
	}
	for i := range tags {
		require.NoError(t, db.Create(&tags[i]).Error)
	}

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyBytes []byte
	var err error

	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w, nil
}

func parseResponse(w *httptest.ResponseRecorder) (*TestResponse, error) {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if err != nil {
		log.Printf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp, err
}

// register creates a user over the API and returns a login token.
func (s *E2ETestSuite) register(t *testing.T, email, username string) string {
	t.Helper()

	body := map[string]interface{}{
		"email":      email,
		"username":   username,
		"first_name": "Test",
		"last_name":  "User",
		"password":   "Password123",
	}
	w, err := s.makeRequest("POST", "/api/v1/auth/register", body, "")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	loginBody := map[string]interface{}{"email": email, "password": "Password123"}
	w, err = s.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := parseResponse(w)
	require.NoError(t, err)
	return resp.Data["token"].(string)
}

// createRecipe posts a recipe and returns its id.
func (s *E2ETestSuite) createRecipe(t *testing.T, token, name string, ingredients []map[string]interface{}) int64 {
	t.Helper()

	body := map[string]interface{}{
		"name":         name,
		"text":         "Cook it well",
		"cooking_time": 30,
		"ingredients":  ingredients,
		"tags":         []int64{1},
	}
	w, err := s.makeRequest("POST", "/api/v1/recipes", body, token)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, w.Code, "recipe creation failed: %s", w.Body.String())

	resp, err := parseResponse(w)
	require.NoError(t, err)
	return int64(resp.Data["id"].(float64))
}

// =============================================================================
// Flow 1: Registration and Authentication
// =============================================================================

func TestFlow1_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /auth/register", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"email":      "anna@test.com",
			"username":   "anna",
			"first_name": "Anna",
			"last_name":  "Ivanova",
			"password":   "Password123",
		}

		w, err := suite.makeRequest("POST", "/api/v1/auth/register", reqBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "anna@test.com", resp.Data["email"])
	})

	t.Run("POST /auth/register duplicate email", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"email":      "anna@test.com",
			"username":   "anna2",
			"first_name": "Anna",
			"last_name":  "Ivanova",
			"password":   "Password123",
		}

		w, err := suite.makeRequest("POST", "/api/v1/auth/register", reqBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("POST /auth/login and GET /profile", func(t *testing.T) {
		loginBody := map[string]interface{}{"email": "anna@test.com", "password": "Password123"}
		w, err := suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		token := resp.Data["token"].(string)
		require.NotEmpty(t, token)

		w, err = suite.makeRequest("GET", "/api/v1/profile", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err = parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "anna@test.com", resp.Data["email"])
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		loginBody := map[string]interface{}{"email": "anna@test.com", "password": "wrong"}
		w, err := suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /auth/set_password", func(t *testing.T) {
		loginBody := map[string]interface{}{"email": "anna@test.com", "password": "Password123"}
		w, err := suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		resp, err := parseResponse(w)
		require.NoError(t, err)
		token := resp.Data["token"].(string)

		changeBody := map[string]interface{}{
			"current_password": "Password123",
			"new_password":     "NewPassword456",
		}
		w, err = suite.makeRequest("POST", "/api/v1/auth/set_password", changeBody, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		// old password no longer works
		w, err = suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		loginBody["password"] = "NewPassword456"
		w, err = suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DELETE /profile removes the account and its recipes", func(t *testing.T) {
		token := suite.register(t, "temp@test.com", "temp")
		recipeID := suite.createRecipe(t, token, "Orphan dish", []map[string]interface{}{
			{"id": 1, "amount": 10},
		})

		w, err := suite.makeRequest("DELETE", "/api/v1/profile", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", recipeID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)

		loginBody := map[string]interface{}{"email": "temp@test.com", "password": "Password123"}
		w, err = suite.makeRequest("POST", "/api/v1/auth/login", loginBody, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /profile without token", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/profile", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: Recipe Lifecycle
// =============================================================================

func TestFlow2_RecipeLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	authorToken := suite.register(t, "author@test.com", "author")
	otherToken := suite.register(t, "other@test.com", "other")

	var recipeID int64

	t.Run("POST /recipes", func(t *testing.T) {
		recipeID = suite.createRecipe(t, authorToken, "Pancakes", []map[string]interface{}{
			{"id": 2, "amount": 300},
			{"id": 3, "amount": 500},
		})
		require.NotZero(t, recipeID)
	})

	t.Run("POST /recipes invalid amount", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Broken",
			"text":         "x",
			"cooking_time": 10,
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 0}},
			"tags":         []int64{1},
		}
		w, err := suite.makeRequest("POST", "/api/v1/recipes", body, authorToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("GET /recipes/:id anonymous", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", recipeID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "Pancakes", resp.Data["name"])
		assert.Equal(t, false, resp.Data["is_favorited"])

		ingredients := resp.Data["ingredients"].([]interface{})
		assert.Len(t, ingredients, 2)
	})

	t.Run("PUT /recipes/:id replaces ingredients", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Pancakes v2",
			"text":         "Now with salt only",
			"cooking_time": 20,
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 5}},
			"tags":         []int64{2},
		}
		w, err := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/recipes/%d", recipeID), body, authorToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "Pancakes v2", resp.Data["name"])

		ingredients := resp.Data["ingredients"].([]interface{})
		require.Len(t, ingredients, 1)
		row := ingredients[0].(map[string]interface{})
		assert.Equal(t, "Salt", row["name"])
		assert.EqualValues(t, 5, row["amount"])
	})

	t.Run("PUT /recipes/:id by non-owner", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Hijacked",
			"text":         "x",
			"cooking_time": 10,
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 5}},
			"tags":         []int64{1},
		}
		w, err := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/recipes/%d", recipeID), body, otherToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("DELETE /recipes/:id", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d", recipeID), nil, otherToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, err = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d", recipeID), nil, authorToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, err = suite.makeRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", recipeID), nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Flow 3: Favorites, Cart and Shopping List Download
// =============================================================================

func TestFlow3_FavoritesAndShoppingList(t *testing.T) {
	suite := setupTestSuite(t)

	authorToken := suite.register(t, "chef@test.com", "chef")
	readerToken := suite.register(t, "reader@test.com", "reader")

	soupID := suite.createRecipe(t, authorToken, "Soup", []map[string]interface{}{
		{"id": 1, "amount": 100},
	})
	stewID := suite.createRecipe(t, authorToken, "Stew", []map[string]interface{}{
		{"id": 1, "amount": 50},
		{"id": 2, "amount": 200},
	})

	t.Run("POST /recipes/:id/favorite", func(t *testing.T) {
		w, err := suite.makeRequest("POST", fmt.Sprintf("/api/v1/recipes/%d/favorite", soupID), nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "Soup", resp.Data["name"])

		// duplicate add
		w, err = suite.makeRequest("POST", fmt.Sprintf("/api/v1/recipes/%d/favorite", soupID), nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp, err = parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("favorite flag visible to the viewer", func(t *testing.T) {
		w, err := suite.makeRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", soupID), nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, true, resp.Data["is_favorited"])
	})

	t.Run("DELETE /recipes/:id/favorite", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d/favorite", soupID), nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		// second delete finds nothing
		w, err = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d/favorite", soupID), nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /shopping_cart/download", func(t *testing.T) {
		for _, id := range []int64{soupID, stewID} {
			w, err := suite.makeRequest("POST", fmt.Sprintf("/api/v1/recipes/%d/shopping_cart", id), nil, readerToken)
			require.NoError(t, err)
			assert.Equal(t, http.StatusCreated, w.Code)
		}

		w, err := suite.makeRequest("GET", "/api/v1/shopping_cart/download", nil, readerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "shopping-list.txt")

		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, "Shopping list:\n"))
		assert.Contains(t, body, "Flour - 200 g")
		assert.Contains(t, body, "Salt - 150 g")
		assert.Equal(t, 1, strings.Count(body, "Salt"), "salt amounts must be summed into one line")
	})
}

// =============================================================================
// Flow 4: Subscriptions
// =============================================================================

func TestFlow4_Subscriptions(t *testing.T) {
	suite := setupTestSuite(t)

	authorToken := suite.register(t, "writer@test.com", "writer")
	followerToken := suite.register(t, "follower@test.com", "follower")

	suite.createRecipe(t, authorToken, "Signature dish", []map[string]interface{}{
		{"id": 1, "amount": 10},
	})

	// writer registered first, ids are sequential
	const authorID = 1

	t.Run("POST /users/:id/subscribe", func(t *testing.T) {
		w, err := suite.makeRequest("POST", fmt.Sprintf("/api/v1/users/%d/subscribe", authorID), nil, followerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Equal(t, "writer", resp.Data["username"])
		assert.Equal(t, true, resp.Data["is_subscribed"])
	})

	t.Run("self-subscribe rejected", func(t *testing.T) {
		w, err := suite.makeRequest("POST", fmt.Sprintf("/api/v1/users/%d/subscribe", authorID), nil, authorToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_TARGET", resp.Error.Code)
	})

	t.Run("GET /subscriptions", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/subscriptions", nil, followerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)

		authors := resp.Data["authors"].([]interface{})
		require.Len(t, authors, 1)
		entry := authors[0].(map[string]interface{})
		assert.Equal(t, "writer", entry["username"])
		assert.EqualValues(t, 1, entry["recipes_count"])

		recipes := entry["recipes"].([]interface{})
		require.Len(t, recipes, 1)
		assert.Equal(t, "Signature dish", recipes[0].(map[string]interface{})["name"])
	})

	t.Run("DELETE /users/:id/subscribe", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/users/%d/subscribe", authorID), nil, followerToken)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, err = suite.makeRequest("GET", "/api/v1/subscriptions", nil, followerToken)
		require.NoError(t, err)
		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Len(t, resp.Data["authors"].([]interface{}), 0)
	})
}

// =============================================================================
// Flow 5: Catalog and Filters
// =============================================================================

func TestFlow5_CatalogAndFilters(t *testing.T) {
	suite := setupTestSuite(t)

	token := suite.register(t, "cook@test.com", "cook")
	suite.createRecipe(t, token, "Bread", []map[string]interface{}{
		{"id": 2, "amount": 500},
	})

	t.Run("GET /ingredients with name prefix", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/ingredients?name=sa", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp TestListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Salt", resp.Data[0]["name"])
	})

	t.Run("GET /tags", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/tags", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp TestListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
	})

	t.Run("GET /recipes filtered by tag", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/recipes?tags=breakfast", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		assert.Len(t, resp.Data["recipes"].([]interface{}), 1)

		w, err = suite.makeRequest("GET", "/api/v1/recipes?tags=dinner", nil, "")
		require.NoError(t, err)
		resp, err = parseResponse(w)
		require.NoError(t, err)
		assert.Len(t, resp.Data["recipes"].([]interface{}), 0)
	})

	t.Run("write routes require auth", func(t *testing.T) {
		body := map[string]interface{}{
			"name":         "Anon dish",
			"text":         "x",
			"cooking_time": 10,
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 5}},
			"tags":         []int64{1},
		}
		w, err := suite.makeRequest("POST", "/api/v1/recipes", body, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
