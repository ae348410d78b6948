package entities

import "github.com/shopspring/decimal"

// Product is one storefront catalog entry. The catalog is static sample
// data; search and sorting are out of scope.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          "prod-001",
			Name:        "Premium Wireless Headphones",
			Category:    "electronics",
			Price:       decimal.NewFromInt(250),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation",
		},
		{
			ID:          "prod-002",
			Name:        "Smart Watch Pro",
			Category:    "electronics",
			Price:       decimal.NewFromInt(400),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
			Description: "Advanced smartwatch with health tracking features",
		},
	}
}
