package memory

import (
	"github.com/shopspring/decimal"

	"bakery-management/internal/model"
)

func item(name, price string, qty int, kind model.Kind) model.Item {
	return model.Item{
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
		Kind:      kind,
	}
}

// SeedRegular returns the everyday range in display order.
func SeedRegular() []model.Item {
	k := model.KindRegular
	return []model.Item{
		item("Bread", "2.50", 50, k),
		item("Cake", "15.00", 20, k),
		item("Cookies", "5.00", 30, k),
		item("Croissant", "3.00", 25, k),
		item("Cupcake", "4.00", 40, k),
		item("Donut", "2.00", 35, k),
		item("Muffin", "3.50", 28, k),
		item("Bagel", "2.50", 20, k),
		item("Brownie", "4.50", 18, k),
		item("Puff Pastry", "3.00", 22, k),
	}
}

// SeedSpecial returns the premium range in display order.
func SeedSpecial() []model.Item {
	k := model.KindSpecial
	return []model.Item{
		item("Red Velvet Cake", "25.00", 10, k),
		item("Cheese Pastry", "20.00", 8, k),
		item("Chocolate Lava Cake", "30.00", 6, k),
		item("Fruit Tart", "22.00", 12, k),
		item("Strawberry Cheesecake", "28.00", 9, k),
		item("Macarons Box", "35.00", 5, k),
		item("Tiramisu", "27.00", 7, k),
		item("Blueberry Danish", "18.00", 10, k),
		item("Caramel Eclair", "24.00", 6, k),
		item("Premium Chocolate Cake", "40.00", 4, k),
	}
}
