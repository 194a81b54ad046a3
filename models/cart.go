package models

// CartItem is a product plus the quantity held in a user's cart. Quantity is
// always >= 1 while the item exists; removal deletes the remote record
// instead of storing zero.
type CartItem struct {
	Product  `bson:",inline"`
	Quantity int `bson:"quantity" json:"quantity"`
}

// Cart is a materialized view of a user's cart. Totals are derived, never
// stored: total == sum(price*quantity), totalItems == sum(quantity).
type Cart struct {
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	TotalItems int        `json:"totalItems"`
}

// NewCart builds a cart view from items, recomputing totals by full
// reduction.
func NewCart(items []CartItem) Cart {
	cart := Cart{Items: items}
	for _, item := range items {
		cart.Total += item.Price * float64(item.Quantity)
		cart.TotalItems += item.Quantity
	}
	return cart
}
