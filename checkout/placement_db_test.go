package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openPlacementDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	// A single connection keeps every statement on the same in-memory
	// database across the connection pool.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: stock, InStock: stock > 0}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("Failed to seed %s: %v", name, err)
	}
	return p
}

func TestPlaceCommitsStockAndOrderTogether(t *testing.T) {
	db := openPlacementDB(t)
	silkRobe := seedProduct(t, db, "Silk Robe", 2450, 5)

	placer := NewGormPlacer(db)
	order, err := placer.Place(context.Background(), PlacementRequest{
		UserID:      "user-1",
		Subtotal:    4900,
		ShippingFee: 250,
		Total:       5150,
		Items: []models.CartItem{
			{ProductID: silkRobe.ID, ProductName: silkRobe.Name, ProductPrice: silkRobe.Price, Quantity: 2},
		},
		PaymentMethod: models.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("Expected placement to succeed, got %v", err)
	}
	if order.OrderRef == "" || len(order.Items) != 1 {
		t.Errorf("Unexpected order snapshot: %+v", order)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, silkRobe.ID).Error; err != nil {
		t.Fatalf("Failed to reload product: %v", err)
	}
	if reloaded.Stock != 3 || !reloaded.InStock {
		t.Errorf("Expected stock 3 after placing 2 of 5, got stock=%d in_stock=%v", reloaded.Stock, reloaded.InStock)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 1 {
		t.Errorf("Expected exactly one order row, got %d", orders)
	}
}

// A cart mixing a fulfillable line with a sold-out one must leave no trace:
// the first line's decrement is rolled back and no order row is written.
func TestPlaceMixedCartRollsBackEveryLine(t *testing.T) {
	db := openPlacementDB(t)
	silkRobe := seedProduct(t, db, "Silk Robe", 2450, 5)
	laceSet := seedProduct(t, db, "Lace Set", 1800, 0)

	placer := NewGormPlacer(db)
	_, err := placer.Place(context.Background(), PlacementRequest{
		UserID:      "user-1",
		Subtotal:    6700,
		ShippingFee: 0,
		Total:       6700,
		Items: []models.CartItem{
			{ProductID: silkRobe.ID, ProductName: silkRobe.Name, ProductPrice: silkRobe.Price, Quantity: 2},
			{ProductID: laceSet.ID, ProductName: laceSet.Name, ProductPrice: laceSet.Price, Quantity: 1},
		},
		PaymentMethod: models.PaymentMethodCOD,
	})
	var oos *OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("Expected OutOfStockError for the sold-out line, got %v", err)
	}
	if oos.Name != laceSet.Name {
		t.Errorf("Expected the sold-out product in the error, got %q", oos.Name)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, silkRobe.ID).Error; err != nil {
		t.Fatalf("Failed to reload product: %v", err)
	}
	if reloaded.Stock != 5 {
		t.Errorf("Expected the fulfillable line's decrement to roll back, got stock=%d", reloaded.Stock)
	}

	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	if orders != 0 || items != 0 {
		t.Errorf("Expected no order rows after the failed placement, got %d orders and %d items", orders, items)
	}
}

// Insufficient stock on a later line rolls back the same way a sold-out
// line does.
func TestPlaceInsufficientLineRollsBack(t *testing.T) {
	db := openPlacementDB(t)
	silkRobe := seedProduct(t, db, "Silk Robe", 2450, 5)
	laceSet := seedProduct(t, db, "Lace Set", 1800, 1)

	placer := NewGormPlacer(db)
	_, err := placer.Place(context.Background(), PlacementRequest{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: silkRobe.ID, ProductName: silkRobe.Name, ProductPrice: silkRobe.Price, Quantity: 1},
			{ProductID: laceSet.ID, ProductName: laceSet.Name, ProductPrice: laceSet.Price, Quantity: 3},
		},
		PaymentMethod: models.PaymentMethodCOD,
	})
	var ins *InsufficientStockError
	if !errors.As(err, &ins) {
		t.Fatalf("Expected InsufficientStockError, got %v", err)
	}
	if ins.Remaining != 1 {
		t.Errorf("Expected remaining 1 in the error, got %d", ins.Remaining)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, silkRobe.ID).Error; err != nil {
		t.Fatalf("Failed to reload product: %v", err)
	}
	if reloaded.Stock != 5 {
		t.Errorf("Expected stock untouched after rollback, got %d", reloaded.Stock)
	}
}
