package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking snapshots the property's title, image and price at booking time
// so the record survives later edits to the property itself.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PropertyID    primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	PropertyTitle string             `bson:"propertyTitle" json:"propertyTitle"`
	PropertyImage string             `bson:"propertyImage,omitempty" json:"propertyImage,omitempty"`
	PropertyPrice float64            `bson:"propertyPrice" json:"propertyPrice"`
	BookingDate   string             `bson:"bookingDate" json:"bookingDate"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type BookingInput struct {
	PropertyID  string `json:"propertyId" validate:"required"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	BookingDate string `json:"bookingDate" validate:"required"`
}
