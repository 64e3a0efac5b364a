package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the coarse permission label attached to a user. Most users
// carry no role at all; promotion endpoints are the only way a role
// changes.
type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Role     Role               `bson:"role" json:"role"`
}
