package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPropertyStatus = "For Sale"
	DefaultPropertyType   = "Single Family"
)

// PropertyInput is the create-request schema for a listing. Pointer fields
// distinguish an absent value from a zero value.
type PropertyInput struct {
	Title       *string   `json:"title" validate:"required"`
	Address     *string   `json:"address" validate:"required"`
	City        *string   `json:"city" validate:"required"`
	State       *string   `json:"state" validate:"required"`
	ZipCode     *string   `json:"zip_code" validate:"required"`
	Price       *int64    `json:"price" validate:"required,gte=0"`
	Beds        *int64    `json:"beds" validate:"required,gte=0"`
	Baths       *float64  `json:"baths" validate:"required,gte=0"`
	Sqft        *int64    `json:"sqft" validate:"omitempty,gte=0"`
	LotSize     *float64  `json:"lot_size" validate:"omitempty,gte=0"`
	YearBuilt   *int64    `json:"year_built"`
	Description *string   `json:"description"`
	Features    []*string `json:"features" validate:"dive,required"`
	Images      []*string `json:"images" validate:"dive,required"`
	Status      *string   `json:"status"`
	Type        *string   `json:"type"`
}

// Property is a listing as stored in the property collection.
type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	ZipCode     string             `bson:"zip_code" json:"zip_code"`
	Price       int64              `bson:"price" json:"price"`
	Beds        int64              `bson:"beds" json:"beds"`
	Baths       float64            `bson:"baths" json:"baths"`
	Sqft        *int64             `bson:"sqft" json:"sqft"`
	LotSize     *float64           `bson:"lot_size" json:"lot_size"`
	YearBuilt   *int64             `bson:"year_built" json:"year_built"`
	Description *string            `bson:"description" json:"description"`
	Features    []string           `bson:"features" json:"features"`
	Images      []string           `bson:"images" json:"images"`
	Status      string             `bson:"status" json:"status"`
	Type        string             `bson:"type" json:"type"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ParseProperty decodes and validates a create-property body and applies
// the schema defaults.
func ParseProperty(body []byte) (*PropertyInput, error) {
	var in PropertyInput
	if err := decodeAndValidate("property", body, &in); err != nil {
		return nil, err
	}
	status := stringOr(in.Status, DefaultPropertyStatus)
	in.Status = &status
	propType := stringOr(in.Type, DefaultPropertyType)
	in.Type = &propType
	return &in, nil
}

// Document builds the stored record. Required fields must already have
// been validated by ParseProperty.
func (in *PropertyInput) Document(now time.Time) Property {
	now = now.UTC()
	return Property{
		Title:       *in.Title,
		Address:     *in.Address,
		City:        *in.City,
		State:       *in.State,
		ZipCode:     *in.ZipCode,
		Price:       *in.Price,
		Beds:        *in.Beds,
		Baths:       *in.Baths,
		Sqft:        in.Sqft,
		LotSize:     in.LotSize,
		YearBuilt:   in.YearBuilt,
		Description: in.Description,
		Features:    stringList(in.Features),
		Images:      stringList(in.Images),
		Status:      stringOr(in.Status, DefaultPropertyStatus),
		Type:        stringOr(in.Type, DefaultPropertyType),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
