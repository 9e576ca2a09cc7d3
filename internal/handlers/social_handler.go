package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recipeshare/dto"
	"recipeshare/internal/services"
)

// Follow godoc
// @Summary      Follow a user
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "target user id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/follow [post]
func Follow(svc *services.SocialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		targetID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.Follow(ctx, id, targetID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "following"})
	}
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "target user id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/follow [delete]
func Unfollow(svc *services.SocialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}
		targetID, err := paramID(c, "id")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := svc.Unfollow(ctx, id, targetID); err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "unfollowed"})
	}
}

// Following godoc
// @Summary      Users the caller follows
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  services.UserSummary
// @Router       /api/v1/users/following [get]
func Following(svc *services.SocialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		users, err := svc.ListFollowing(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(users)
	}
}

// Followers godoc
// @Summary      Users following the caller
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  services.UserSummary
// @Router       /api/v1/users/followers [get]
func Followers(svc *services.SocialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		users, err := svc.ListFollowers(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(users)
	}
}

// Discover godoc
// @Summary      Users the caller has no relation with yet
// @Tags         social
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  services.UserSummary
// @Router       /api/v1/users/discover [get]
func Discover(svc *services.SocialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		users, err := svc.ListDiscoverable(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(users)
	}
}
