package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/handlers"
	"recipeshare/internal/middleware"
	"recipeshare/internal/services"
)

type Deps struct {
	Auth       *services.AuthService
	Recipes    *services.RecipeService
	Engagement *services.EngagementService
	Social     *services.SocialService
	Users      *services.UserService
}

// Public registers the routes reachable without a token.
func Public(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Post("/register", handlers.Register(deps.Auth))
	v1.Post("/login", handlers.Login(deps.Auth))

	// Static paths must come before /recipes/:id.
	v1.Get("/recipes/top", handlers.TopRecipes(deps.Recipes))
	v1.Get("/recipes/search", handlers.SearchRecipes(deps.Recipes))
	v1.Get("/recipes", handlers.ListRecipes(deps.Recipes))
	v1.Get("/recipes/:id", handlers.GetRecipe(deps.Recipes))
}

// Protected registers everything behind the JWT middleware.
func Protected(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1", middleware.RequireAuth())

	v1.Post("/logout", handlers.Logout())
	v1.Get("/profile", handlers.Profile(deps.Auth))
	v1.Put("/profile", handlers.UpdateProfile(deps.Users))

	v1.Get("/my-recipes", handlers.MyRecipes(deps.Recipes))
	v1.Post("/recipes", handlers.CreateRecipe(deps.Recipes))
	v1.Put("/recipes/:id", handlers.UpdateRecipe(deps.Recipes))
	v1.Delete("/recipes/:id", handlers.DeleteRecipe(deps.Recipes))

	v1.Post("/recipes/:id/rate", handlers.RateRecipe(deps.Engagement))
	v1.Post("/recipes/:id/comments", handlers.AddComment(deps.Engagement))
	v1.Delete("/recipes/:id/comments/:commentId", handlers.DeleteComment(deps.Engagement))
	v1.Post("/recipes/:id/like", handlers.ToggleLike(deps.Engagement))

	v1.Get("/saved-recipes", handlers.SavedRecipes(deps.Users))
	v1.Post("/saved-recipes", handlers.SaveRecipe(deps.Users))
	v1.Delete("/saved-recipes", handlers.UnsaveRecipe(deps.Users))

	v1.Post("/users/:id/follow", handlers.Follow(deps.Social))
	v1.Delete("/users/:id/follow", handlers.Unfollow(deps.Social))
	v1.Get("/users/following", handlers.Following(deps.Social))
	v1.Get("/users/followers", handlers.Followers(deps.Social))
	v1.Get("/users/discover", handlers.Discover(deps.Social))
}
