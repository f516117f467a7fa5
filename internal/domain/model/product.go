package model

import (
	"time"
)

type Product struct {
	ID          string    `json:"_id" bson:"_id"`
	ProductName string    `json:"productName" bson:"productName"`
	Price       float64   `json:"price" bson:"price"`
	Quantity    float64   `json:"quantity" bson:"quantity"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Slug        string    `json:"slug,omitempty" bson:"slug,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
