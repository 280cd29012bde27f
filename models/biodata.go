package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Biodata struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BiodataID     int                `bson:"biodataId" json:"biodataId"` // sequential within one owner's records
	Email         string             `bson:"email" json:"email"`
	Gender        string             `bson:"gender" json:"gender"` // male, female
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image" json:"image"`
	DOB           string             `bson:"dob" json:"dob"`
	Height        string             `bson:"height" json:"height"`
	Weight        string             `bson:"weight" json:"weight"`
	Age           int                `bson:"age" json:"age"`
	Occupation    string             `bson:"occupation" json:"occupation"`
	Race          string             `bson:"race" json:"race"`
	FathersName   string             `bson:"fathersName" json:"fathersName"`
	MothersName   string             `bson:"mothersName" json:"mothersName"`
	PermanentDiv  string             `bson:"permanentDiv" json:"permanentDiv"`
	PresentDiv    string             `bson:"presentDiv" json:"presentDiv"`
	PartnerAge    string             `bson:"partnerAge" json:"partnerAge"`
	PartnerHeight string             `bson:"partnerHeight" json:"partnerHeight"`
	PartnerWeight string             `bson:"partnerWeight" json:"partnerWeight"`
	Mobile        string             `bson:"mobile" json:"mobile"`
	Type          string             `bson:"type,omitempty" json:"type,omitempty"`     // "premium" when upgraded
	Status        string             `bson:"status,omitempty" json:"status,omitempty"` // "approved" once contact is released
}
