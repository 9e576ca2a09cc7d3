// Package authctx holds the verified caller identity. The id and role come
// from the JWT middleware only; request bodies are never a source of identity.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"recipeshare/model"
)

type Identity struct {
	UserID bson.ObjectID
	Role   string
}

func (id Identity) IsAdmin() bool { return id.Role == model.RoleAdmin }

// From extracts the identity stored in Locals by the JWT middleware.
func From(c *fiber.Ctx) (Identity, bool) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return Identity{}, false
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return Identity{}, false
	}
	role, _ := c.Locals("role").(string)
	if role == "" {
		role = model.RoleUser
	}
	return Identity{UserID: oid, Role: role}, true
}
