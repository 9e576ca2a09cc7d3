package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/dto"
	"recipeshare/internal/apperr"
	"recipeshare/internal/authctx"
)

const requestTimeout = 5 * time.Second

func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// fail maps the service error taxonomy onto HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = fiber.StatusBadRequest
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindForbidden:
		status = fiber.StatusForbidden
	case apperr.KindConflict:
		status = fiber.StatusConflict
	case apperr.KindUnavailable:
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func identity(c *fiber.Ctx) (authctx.Identity, error) {
	id, ok := authctx.From(c)
	if !ok {
		return authctx.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.ObjectID{}, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return oid, nil
}
