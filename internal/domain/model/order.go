package model

import (
	"time"
)

type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Quantity  float64 `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Order is the stored form. DeliveryAddress is kept exactly as submitted,
// either a string or a JSON object.
type Order struct {
	ID              string      `json:"_id" bson:"_id"`
	UserID          string      `json:"userId" bson:"userId"`
	Items           []OrderItem `json:"items" bson:"items"`
	TotalAmount     float64     `json:"totalAmount" bson:"totalAmount"`
	DeliveryAddress any         `json:"deliveryAddress" bson:"deliveryAddress"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
}

// ExpandedOrderItem carries the referenced product in place of its id.
// Product is nil when the product no longer exists.
type ExpandedOrderItem struct {
	Product  *Product `json:"productId"`
	Quantity float64  `json:"quantity"`
	Price    float64  `json:"price"`
}

type ExpandedOrder struct {
	ID              string              `json:"_id"`
	UserID          string              `json:"userId"`
	Items           []ExpandedOrderItem `json:"items"`
	TotalAmount     float64             `json:"totalAmount"`
	DeliveryAddress any                 `json:"deliveryAddress"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// ItemsTotal sums price*quantity over the order's items.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * it.Quantity
	}
	return total
}

// ProductIDs returns the distinct product ids referenced by the order, in
// first-seen order.
func (o *Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

// Expand resolves every item's product id against products.
func (o *Order) Expand(products map[string]*Product) ExpandedOrder {
	items := make([]ExpandedOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ExpandedOrderItem{
			Product:  products[it.ProductID],
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return ExpandedOrder{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
	}
}
