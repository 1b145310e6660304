package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

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
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "media"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Ingredient{},
		&domain.Tag{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Subscription{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tagRepo := repository.NewTagRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	cartRepo := repository.NewShoppingListRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	relationService := relation.NewService(relationRepo, recipeRepo, userRepo)
	relationHandler := relation.NewHandler(relationService, recipeRepo)

	recipeService := recipe.NewService(recipeRepo, ingredientRepo, tagRepo, relationService, mediaDir)
	recipeHandler := recipe.NewHandler(recipeService)

	userService := user.NewService(userRepo, recipeRepo, relationService)
	userHandler := user.NewHandler(userService)

	listService := shoppinglist.NewService(cartRepo)
	listHandler := shoppinglist.NewHandler(listService)

	ingredientHandler := ingredient.NewHandler(ingredientRepo)
	tagHandler := tag.NewHandler(tagRepo)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// reads: anonymous allowed, flags resolved when a token is present
		read := v1.Group("/")
		read.Use(middleware.OptionalAuth(j))
		{
			recipeHandler.RegisterReadRoutes(read)
			userHandler.RegisterReadRoutes(read)
			ingredientHandler.RegisterRoutes(read)
			tagHandler.RegisterRoutes(read)
		}

		// mutations: authenticated identity passed down explicitly
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			recipeHandler.RegisterWriteRoutes(protected)
			relationHandler.RegisterRoutes(protected)
			listHandler.RegisterRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
