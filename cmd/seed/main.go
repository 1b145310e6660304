package main

import (
	"fmt"
	"log"
	"os"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM shopping_carts")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	seedUsers := []struct {
		email, username, first, last string
	}{
		{"anna@foodgram.app", "anna", "Анна", "Иванова"},
		{"boris@foodgram.app", "boris", "Борис", "Петров"},
		{"clara@foodgram.app", "clara", "Клара", "Смирнова"},
	}
	for _, su := range seedUsers {
		hash, _ := bcrypt.GenerateFromPassword([]byte("foodgram123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        su.email,
			Username:     su.username,
			FirstName:    su.first,
			LastName:     su.last,
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / foodgram123", su.email)
	}

	// ================== INGREDIENTS ==================
	log.Println("Creating ingredient catalog...")

	ingredients := []domain.Ingredient{}
	catalog := []struct {
		name, unit string
	}{
		{"Соль", "г"}, {"Сахар", "г"}, {"Мука", "г"}, {"Молоко", "мл"},
		{"Яйцо", "шт"}, {"Масло сливочное", "г"}, {"Картофель", "г"},
		{"Лук репчатый", "г"}, {"Морковь", "г"}, {"Говядина", "г"},
		{"Курица", "г"}, {"Рис", "г"}, {"Помидор", "г"}, {"Огурец", "г"},
		{"Сметана", "г"},
	}
	for _, c := range catalog {
		ing := domain.Ingredient{Name: c.name, MeasurementUnit: c.unit}
		db.Create(&ing)
		ingredients = append(ingredients, ing)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")

	tags := []domain.Tag{
		{Name: "Завтрак", Slug: "breakfast", Color: "#E26C2D"},
		{Name: "Обед", Slug: "lunch", Color: "#49B64E"},
		{Name: "Ужин", Slug: "dinner", Color: "#8775D2"},
	}
	for i := range tags {
		db.Create(&tags[i])
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")

	type entry struct {
		ingredient int // index into catalog
		amount     int
	}
	seedRecipes := []struct {
		author      int // index into users
		name, text  string
		cookingTime int
		entries     []entry
		tags        []int
	}{
		{0, "Блины", "Смешать муку, молоко и яйца. Жарить на сливочном масле.", 30,
			[]entry{{2, 300}, {3, 500}, {4, 2}, {1, 50}, {0, 5}}, []int{0}},
		{0, "Жареная картошка", "Картофель нарезать, жарить с луком до золотистой корочки.", 25,
			[]entry{{6, 800}, {7, 150}, {0, 10}}, []int{1, 2}},
		{1, "Плов", "Обжарить говядину с луком и морковью, добавить рис и воду.", 90,
			[]entry{{9, 500}, {11, 400}, {7, 200}, {8, 200}, {0, 15}}, []int{1}},
	}
	recipes := []domain.Recipe{}
	for _, sr := range seedRecipes {
		r := domain.Recipe{
			AuthorID:    users[sr.author].ID,
			Name:        sr.name,
			Text:        sr.text,
			CookingTime: sr.cookingTime,
		}
		db.Create(&r)
		for _, e := range sr.entries {
			db.Create(&domain.RecipeIngredient{
				RecipeID:     r.ID,
				IngredientID: ingredients[e.ingredient].ID,
				Amount:       e.amount,
			})
		}
		for _, ti := range sr.tags {
			db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", r.ID, tags[ti].ID)
		}
		recipes = append(recipes, r)
	}

	// ================== RELATIONS ==================
	log.Println("Creating favorites, cart and subscriptions...")

	db.Create(&domain.Favorite{UserID: users[2].ID, RecipeID: recipes[0].ID})
	db.Create(&domain.ShoppingCart{UserID: users[2].ID, RecipeID: recipes[1].ID})
	db.Create(&domain.ShoppingCart{UserID: users[2].ID, RecipeID: recipes[2].ID})
	db.Create(&domain.Subscription{UserID: users[2].ID, AuthorID: users[0].ID})

	fmt.Println("Seed complete.")
}
