package handlers

import (
	"github.com/gofiber/fiber/v2"

	"recipeshare/dto"
	"recipeshare/internal/services"
)

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "account details"
// @Success      201  {object}  model.User
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/register [post]
func Register(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		user, err := svc.Register(ctx, services.RegisterInput{
			Username: body.Username,
			Email:    body.Email,
			Password: body.Password,
			Role:     body.Role,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// Login godoc
// @Summary      Log in and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credentials"
// @Success      200  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/login [post]
func Login(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
		}

		ctx, cancel := reqCtx()
		defer cancel()

		token, user, err := svc.Login(ctx, body.Email, body.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.AuthResponse{Token: token, User: user})
	}
}

// Logout godoc
// @Summary      Log out (stateless, client drops the token)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/v1/logout [post]
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "logout successful"})
	}
}

// Profile godoc
// @Summary      Current user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/profile [get]
func Profile(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity(c)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		user, err := svc.Profile(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(user)
	}
}
