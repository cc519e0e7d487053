// Package catalog is the static product list served to the storefront. There
// is no inventory backing it; prices shown here are the ones the cart
// snapshots into order items.
package catalog

import "fmt"

type Size string

const (
	SizeSmall  Size = "pequeño"
	SizeMedium Size = "mediano"
	SizeLarge  Size = "grande"
)

type SizePrice struct {
	Size  Size    `json:"size"`
	Price float64 `json:"price"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Sizes       []SizePrice `json:"sizes,omitempty"`
	FixedPrice  float64     `json:"fixedPrice,omitempty"`
	Featured    bool        `json:"featured,omitempty"`
}

var products = []Product{
	{
		ID:          "tres-leches",
		Name:        "Tres Leches",
		Description: "Nuestro postre estrella. Esponjoso, cremoso y con el balance perfecto de dulzura. Hecho con amor y dedicación artesanal.",
		Sizes: []SizePrice{
			{Size: SizeSmall, Price: 25},
			{Size: SizeMedium, Price: 35},
			{Size: SizeLarge, Price: 50},
		},
		Featured: true,
	},
	{
		ID:          "flan",
		Name:        "Flan",
		Description: "Clásico y suave, con caramelo casero. Un postre que siempre reconforta.",
		FixedPrice:  25,
	},
}

// Products returns the full catalog.
func Products() []Product {
	return products
}

// ByID looks a product up by identifier.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FormatPrice renders a price the way the storefront displays it.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
