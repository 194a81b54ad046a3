package models

// Product is a static catalog entry. The catalog ships with the binary and
// is never mutated at runtime.
type Product struct {
	ID          int     `bson:"product_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Type        string  `bson:"type" json:"type"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
	Image       string  `bson:"image" json:"image"`
}
