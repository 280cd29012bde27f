package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PremiumRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	BiodataID int                `bson:"biodataId,omitempty" json:"biodataId,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"` // pending, premium
}
