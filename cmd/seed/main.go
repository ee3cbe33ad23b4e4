package main

import (
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/config"
	"github.com/artsemyn/toko-agung-computer-inventory-management/internal/model"
	"github.com/artsemyn/toko-agung-computer-inventory-management/pkg/database"

	"github.com/sirupsen/logrus"
)

// Seeds demo users (one per role) and the computer-parts catalog.
// Destructive: wipes existing rows first. Intended for dev databases only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db := database.Connect(cfg)
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.StockLog{}, &model.Transaction{})

	logrus.Info("seeding database...")

	db.Exec("DELETE FROM stock_logs")
	db.Exec("DELETE FROM transactions")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM users")

	users := []struct {
		name  string
		email string
		role  model.Role
	}{
		{"Admin Owner", "owner@techstore.com", model.RoleOwner},
		{"Staff Gudang", "gudang@techstore.com", model.RoleWarehouse},
		{"Staff Kasir", "kasir@techstore.com", model.RoleCashier},
	}
	for _, u := range users {
		user := &model.User{Name: u.name, Email: u.email, Role: u.role, IsActive: true}
		if err := user.SetPassword("password123"); err != nil {
			logrus.WithError(err).Fatal("failed to hash password")
		}
		if err := db.Create(user).Error; err != nil {
			logrus.WithError(err).WithField("email", u.email).Fatal("failed to create user")
		}
	}
	logrus.Info("users created")

	products := []model.Product{
		{Name: "AMD Ryzen 5 5600X", Category: "Processor", Brand: "AMD", Price: 2500000, Stock: 15, MinStock: 5, Location: "A1"},
		{Name: "AMD Ryzen 7 5800X", Category: "Processor", Brand: "AMD", Price: 3800000, Stock: 8, MinStock: 3, Location: "A1"},
		{Name: "Intel Core i5-12400F", Category: "Processor", Brand: "Intel", Price: 2300000, Stock: 12, MinStock: 5, Location: "A2"},
		{Name: "Intel Core i7-12700K", Category: "Processor", Brand: "Intel", Price: 5200000, Stock: 5, MinStock: 2, Location: "A2"},
		{Name: "NVIDIA RTX 4060", Category: "VGA", Brand: "NVIDIA", Price: 5500000, Stock: 6, MinStock: 3, Location: "B1"},
		{Name: "NVIDIA RTX 4070", Category: "VGA", Brand: "NVIDIA", Price: 9500000, Stock: 3, MinStock: 2, Location: "B1"},
		{Name: "AMD RX 7600", Category: "VGA", Brand: "AMD", Price: 4500000, Stock: 8, MinStock: 3, Location: "B2"},
		{Name: "Kingston DDR4 16GB 3200MHz", Category: "RAM", Brand: "Kingston", Price: 650000, Stock: 25, MinStock: 10, Location: "C1"},
		{Name: "Corsair DDR4 32GB 3600MHz", Category: "RAM", Brand: "Corsair", Price: 1500000, Stock: 10, MinStock: 5, Location: "C1"},
		{Name: "G.Skill DDR5 32GB 6000MHz", Category: "RAM", Brand: "G.Skill", Price: 2200000, Stock: 5, MinStock: 3, Location: "C2"},
		{Name: "Samsung 970 EVO Plus 1TB", Category: "Storage", Brand: "Samsung", Price: 1500000, Stock: 15, MinStock: 5, Location: "D1"},
		{Name: "WD Blue SN580 1TB", Category: "Storage", Brand: "Western Digital", Price: 1100000, Stock: 20, MinStock: 8, Location: "D1"},
		{Name: "Seagate Barracuda 2TB HDD", Category: "Storage", Brand: "Seagate", Price: 850000, Stock: 12, MinStock: 5, Location: "D2"},
		{Name: "Logitech G502 Hero", Category: "Mouse", Brand: "Logitech", Price: 850000, Stock: 0, MinStock: 5, Location: "E1"},
		{Name: "Razer DeathAdder V3", Category: "Mouse", Brand: "Razer", Price: 1200000, Stock: 7, MinStock: 3, Location: "E1"},
		{Name: "Keychron K8 Pro", Category: "Keyboard", Brand: "Keychron", Price: 1800000, Stock: 4, MinStock: 2, Location: "E2"},
		{Name: "Royal Kludge RK84", Category: "Keyboard", Brand: "Royal Kludge", Price: 750000, Stock: 10, MinStock: 5, Location: "E2"},
	}
	for i := range products {
		products[i].IsActive = true
		if err := db.Create(&products[i]).Error; err != nil {
			logrus.WithError(err).WithField("product", products[i].Name).Fatal("failed to create product")
		}
	}
	logrus.WithField("count", len(products)).Info("products created")

	logrus.Info("seeding done")
}
