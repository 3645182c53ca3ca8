package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InquiryInput is the create-request schema for a lead. PropertyID is a
// soft reference and is never checked against the property collection.
type InquiryInput struct {
	Name       *string `json:"name" validate:"required"`
	Email      *string `json:"email" validate:"required"`
	Phone      *string `json:"phone"`
	Message    *string `json:"message" validate:"required"`
	PropertyID *string `json:"property_id"`
}

type Inquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      *string            `bson:"phone" json:"phone"`
	Message    string             `bson:"message" json:"message"`
	PropertyID *string            `bson:"property_id" json:"property_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

func ParseInquiry(body []byte) (*InquiryInput, error) {
	var in InquiryInput
	if err := decodeAndValidate("inquiry", body, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (in *InquiryInput) Document(now time.Time) Inquiry {
	now = now.UTC()
	return Inquiry{
		Name:       *in.Name,
		Email:      *in.Email,
		Phone:      in.Phone,
		Message:    *in.Message,
		PropertyID: in.PropertyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
