package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recipeshare/dto"
	"recipeshare/internal/services"
)

// CreateRecipe godoc
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecipeRequest  true  "recipe"
// @Success      201  {object}  model.Recipe
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes [post]
func CreateRecipe(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		var body dto.RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		rec, err := svc.Create(ctx, id, services.RecipeInput{
			Title:        body.Title,
			Ingredients:  body.Ingredients,
			Instructions: body.Instructions,
			CookingTime:  body.CookingTime,
			Servings:     body.Servings,
			Image:        body.Image,
			Video:        body.Video,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ListRecipes godoc
// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}  model.Recipe
// @Router       /api/v1/recipes [get]
func ListRecipes(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx()
		defer cancel()

		recipes, err := svc.List(ctx)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recipes)
	}
}

// GetRecipe godoc
// @Summary      Get one recipe
// @Tags         recipes
// @Produce      json
// @Param        id  path  string  true  "recipe id"
// @Success      200  {object}  model.Recipe
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id} [get]
func GetRecipe(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		rec, err := svc.Get(ctx, recipeID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rec)
	}
}

// MyRecipes godoc
// @Summary      List the caller's recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.Recipe
// @Router       /api/v1/my-recipes [get]
func MyRecipes(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		recipes, err := svc.ListByOwner(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recipes)
	}
}

// UpdateRecipe godoc
// @Summary      Update a recipe (owner only)
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "recipe id"
// @Param        body  body  dto.RecipeRequest  true  "fields to update"
// @Success      200  {object}  model.Recipe
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id} [put]
func UpdateRecipe(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		var body dto.RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		rec, err := svc.Update(ctx, id, recipeID, services.RecipeInput{
			Title:        body.Title,
			Ingredients:  body.Ingredients,
			Instructions: body.Instructions,
			CookingTime:  body.CookingTime,
			Servings:     body.Servings,
			Image:        body.Image,
			Video:        body.Video,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteRecipe godoc
// @Summary      Delete a recipe (owner or admin)
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "recipe id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id} [delete]
func DeleteRecipe(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.Delete(ctx, id, recipeID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "recipe deleted"})
	}
}

// TopRecipes godoc
// @Summary      Highest rated recipes
// @Tags         recipes
// @Produce      json
// @Param        limit  query  int  false  "max results (default 10)"
// @Success      200  {array}  model.Recipe
// @Router       /api/v1/recipes/top [get]
func TopRecipes(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

		ctx, cancel := reqCtx()
		defer cancel()

		recipes, err := svc.TopRated(ctx, limit)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recipes)
	}
}

// SearchRecipes godoc
// @Summary      Search recipes by ingredient
// @Tags         recipes
// @Produce      json
// @Param        ingredient  query  string  true  "ingredient"
// @Success      200  {array}  model.Recipe
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/search [get]
func SearchRecipes(svc *services.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx()
		defer cancel()

		recipes, err := svc.Search(ctx, c.Query("ingredient"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recipes)
	}
}
