// internal/store/seed.go
package store

import "github.com/sirupsen/logrus"

type seedProduct struct {
	name     string
	category string
	price    float64
	stock    int
}

var defaultCatalog = []seedProduct{
	{"Nitro Cold Brew", "Coffee", 5.50, 30},
	{"Iced Matcha Latte", "Tea", 6.00, 25},
	{"Croissant", "Pastry", 3.75, 40},
	{"Espresso", "Coffee", 3.00, 100},
	{"Avocado Toast", "Food", 8.50, 15},
	{"Blueberry Muffin", "Pastry", 3.50, 5},
	{"Chai Latte", "Tea", 5.25, 30},
	{"Bottled Water", "Drinks", 2.00, 50},
}

// SeedInitialData installs the demo catalog into an empty store. No-op
// when products already exist.
func (s *Store) SeedInitialData() {
	if len(s.Products()) > 0 {
		return
	}

	for _, p := range defaultCatalog {
		s.AddProduct(p.name, p.category, p.price, p.stock)
	}

	logrus.WithField("products", len(defaultCatalog)).Info("Seeded initial catalog")
}
