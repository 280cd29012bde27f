package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Rating   float64            `bson:"rating" json:"rating"`
	Marriage string             `bson:"marriageDate,omitempty" json:"marriageDate,omitempty"`
	Text     string             `bson:"text" json:"text"`
}
