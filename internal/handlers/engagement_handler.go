package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recipeshare/dto"
	"recipeshare/internal/services"
)

// RateRecipe godoc
// @Summary      Rate a recipe (1-5, resubmission replaces)
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "recipe id"
// @Param        body  body  dto.RateRequest  true  "rating"
// @Success      200  {object}  services.RatingSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id}/rate [post]
func RateRecipe(svc *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		var body dto.RateRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		summary, err := svc.Rate(ctx, id, recipeID, body.Rating)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(summary)
	}
}

// AddComment godoc
// @Summary      Comment on a recipe
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "recipe id"
// @Param        body  body  dto.CreateCommentRequest  true  "comment"
// @Success      201  {object}  model.Comment
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id}/comments [post]
func AddComment(svc *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		var body dto.CreateCommentRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		comment, err := svc.AddComment(ctx, id, recipeID, body.Text)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

// DeleteComment godoc
// @Summary      Delete a comment (author or admin)
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string  true  "recipe id"
// @Param        commentId  path  string  true  "comment id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id}/comments/{commentId} [delete]
func DeleteComment(svc *services.EngagementService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		recipeID, err := paramID(c, "id")
		if err != nil {
			return err
		}
		commentID, err := paramID(c, "commentId")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.DeleteComment(ctx, id, recipeID, commentID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "comment deleted"})
	}
}

// ToggleLike godoc
// @Summary      Like or unlike a recipe
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "recipe id"
// @Success      200  {object}  services.LikeState
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/recipes/{id}/like [post]
func ToggleLike(svc *services.EngagementService) fiber.Handler {
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

		state, err := svc.ToggleLike(ctx, id, recipeID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(state)
	}
}
