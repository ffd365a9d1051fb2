package repository

import (
	"testing"

	"github.com/shopfront/internal/models"
)

func TestCartDeleteScopedToUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Mug", "5", 10)

	item := &models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	affected, err := repo.DeleteByIDAndUser(item.ID, 2)
	if err != nil || affected != 0 {
		t.Fatalf("expected other user delete to affect nothing, affected=%d err=%v", affected, err)
	}
	affected, err = repo.DeleteByIDAndUser(item.ID, 1)
	if err != nil || affected != 1 {
		t.Fatalf("expected owner delete to affect 1 row, affected=%d err=%v", affected, err)
	}
}

func TestCartUniquePerUserProduct(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)
	product := createTestProduct(t, db, "Pen", "2", 10)

	if err := repo.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	if err := repo.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}); err == nil {
		t.Fatalf("expected unique constraint violation")
	}

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 || items[0].Product == nil {
		t.Fatalf("expected one item with product, got %+v", items)
	}
}
