package configs

import (
	"log"
	"strconv"

	"orderboard/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedOwner creates the initial owner account from ADMIN_USERNAME /
// ADMIN_PASSWORD. Skipped when unset or when the account already exists.
func SeedOwner() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding owner: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("owner already exists:", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.User{
		Username: username,
		Password: string(hash),
		FullName: "Owner",
		Role:     entity.RoleOwner,
		IsActive: true,
	}
	return db.Create(&owner).Error
}

// SeedLookups inserts the default settings and a starter menu so a fresh
// install has something to order.
func SeedLookups() error {
	db := DB()

	var setting entity.Setting
	if err := db.Where(entity.Setting{Key: entity.SettingCustomerOrdering}).
		Attrs(entity.Setting{
			Value:       strconv.FormatBool(true),
			Description: "Enable or disable customer self-ordering",
		}).
		FirstOrCreate(&setting).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{Name: "Margherita Pizza", Price: 12.99, Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil", Category: "Pizza", IsAvailable: true},
		{Name: "Pepperoni Pizza", Price: 14.99, Description: "Loaded with pepperoni and mozzarella cheese", Category: "Pizza", IsAvailable: true},
		{Name: "Chicken Burger", Price: 9.99, Description: "Grilled chicken patty with lettuce, tomato, and special sauce", Category: "Burgers", IsAvailable: true},
		{Name: "Beef Burger", Price: 10.99, Description: "Juicy beef patty with cheese, lettuce, and tomato", Category: "Burgers", IsAvailable: true},
		{Name: "Caesar Salad", Price: 7.99, Description: "Fresh romaine lettuce with Caesar dressing and croutons", Category: "Salads", IsAvailable: true},
		{Name: "Coca Cola", Price: 2.99, Description: "Chilled soft drink", Category: "Beverages", IsAvailable: true},
		{Name: "Chocolate Cake", Price: 5.99, Description: "Rich chocolate cake with chocolate frosting", Category: "Desserts", IsAvailable: true},
		{Name: "Spaghetti Carbonara", Price: 13.99, Description: "Creamy pasta with bacon and parmesan", Category: "Pasta", IsAvailable: true},
	}
	for _, m := range menu {
		var existing entity.MenuItem
		if err := db.Where(entity.MenuItem{Name: m.Name}).Attrs(m).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}
