package models

// Category is a product category as listed by the product service.
type Category struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
}
