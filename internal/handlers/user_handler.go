package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/dto"
	"recipeshare/internal/services"
	"recipeshare/model"
)

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "fields to update"
// @Success      200  {object}  model.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/profile [put]
func UpdateProfile(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		var body dto.UpdateProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		user, err := svc.UpdateProfile(ctx, id, model.ProfileUpdate{
			Username:       body.Username,
			Email:          body.Email,
			Bio:            body.Bio,
			ProfilePicture: body.ProfilePicture,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(user)
	}
}

// SavedRecipes godoc
// @Summary      List the caller's saved recipes
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.Recipe
// @Router       /api/v1/saved-recipes [get]
func SavedRecipes(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		recipes, err := svc.ListSaved(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(recipes)
	}
}

// SaveRecipe godoc
// @Summary      Bookmark a recipe
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveRecipeRequest  true  "recipe id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/saved-recipes [post]
func SaveRecipe(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		recipeID, err := savedRecipeID(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.SaveRecipe(ctx, id, recipeID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "recipe saved"})
	}
}

// UnsaveRecipe godoc
// @Summary      Remove a bookmarked recipe
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveRecipeRequest  true  "recipe id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/v1/saved-recipes [delete]
func UnsaveRecipe(svc *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		recipeID, err := savedRecipeID(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.UnsaveRecipe(ctx, id, recipeID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "recipe removed from saved"})
	}
}

func savedRecipeID(c *fiber.Ctx) (bson.ObjectID, error) {
	var body dto.SaveRecipeRequest
	if err := c.BodyParser(&body); err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	oid, err := bson.ObjectIDFromHex(body.RecipeID)
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid recipeId")
	}
	return oid, nil
}
