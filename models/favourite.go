package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Favourite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"` // owner of the favourites list
	BiodataID  int                `bson:"biodataId" json:"biodataId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Occupation string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
}
