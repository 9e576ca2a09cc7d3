// @title Recipeshare API
// @version 1.0
// @description Recipe sharing backend: accounts, recipes, ratings, comments, likes and follows.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "recipeshare/docs"

	"recipeshare/bootstrap"
	"recipeshare/config"
	"recipeshare/database"
	"recipeshare/internal/middleware"
	"recipeshare/internal/repository"
	"recipeshare/internal/routes"
	"recipeshare/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureUserIndexes(db); err != nil {
		log.Fatalf("ensure user indexes failed: %v", err)
	}
	if err := bootstrap.EnsureRecipeIndexes(db); err != nil {
		log.Fatalf("ensure recipe indexes failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)

	deps := routes.Deps{
		Auth:       services.NewAuthService(users, cfg.JWTSecret),
		Recipes:    services.NewRecipeService(recipes),
		Engagement: services.NewEngagementService(recipes),
		Social:     services.NewSocialService(users),
		Users:      services.NewUserService(users, recipes),
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Public(app, deps)

	app.Use(middleware.JWTAuth(cfg.JWTSecret))
	routes.Protected(app, deps)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
