package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactRequest is a paid request to reveal the contact details behind a
// biodata record. Price is kept in major currency units; analytics sums it.
type ContactRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"` // requester
	BiodataID     int                `bson:"biodataId,omitempty" json:"biodataId,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	MobileNumber  string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	ContactEmail  string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"` // pending, approved
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
