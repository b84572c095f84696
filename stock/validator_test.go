package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

func product(stock int, inStock bool) *models.Product {
	return &models.Product{ID: 1, Name: "Lace Bralette", Price: 2450, Stock: stock, InStock: inStock}
}

func TestCanAddQuantity(t *testing.T) {
	tests := []struct {
		name      string
		product   *models.Product
		requested int
		inCart    int
		want      bool
	}{
		{"fits with empty cart", product(5, true), 3, 0, true},
		{"fits on top of cart", product(5, true), 2, 3, true},
		{"exactly exhausts stock", product(5, true), 5, 0, true},
		{"exceeds stock", product(5, true), 6, 0, false},
		{"exceeds remaining after cart", product(5, true), 3, 3, false},
		{"stock flag off", product(5, false), 1, 0, false},
		{"zero stock", product(0, true), 1, 0, false},
		{"zero requested", product(5, true), 0, 0, false},
		{"negative requested", product(5, true), -1, 0, false},
		{"nil product", nil, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAddQuantity(tt.product, tt.requested, tt.inCart); got != tt.want {
				t.Errorf("CanAddQuantity() = %v, want %v", got, tt.want)
			}
		})
	}
}

// fakeProducts returns canned products keyed by id.
type fakeProducts struct {
	products map[uint]*models.Product
	err      error
	reads    int
}

func (f *fakeProducts) ProductByID(ctx context.Context, id uint) (*models.Product, error) {
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func TestCheckAddReReadsLiveStock(t *testing.T) {
	reader := &fakeProducts{products: map[uint]*models.Product{1: product(5, true)}}
	v := NewValidator(reader)

	p, err := v.CheckAdd(context.Background(), 1, 2, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p == nil || p.ID != 1 {
		t.Fatal("Expected the live product back for snapshotting")
	}
	if reader.reads != 1 {
		t.Errorf("Expected exactly one live read, got %d", reader.reads)
	}
}

func TestCheckAddProductGone(t *testing.T) {
	v := NewValidator(&fakeProducts{products: map[uint]*models.Product{}})

	_, err := v.CheckAdd(context.Background(), 9, 1, 0)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestCheckAddSoldOut(t *testing.T) {
	v := NewValidator(&fakeProducts{products: map[uint]*models.Product{1: product(0, false)}})

	_, err := v.CheckAdd(context.Background(), 1, 1, 0)
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UnavailableError, got %v", err)
	}
	if unavailable.Remaining != 0 {
		t.Errorf("Expected 0 remaining, got %d", unavailable.Remaining)
	}
}

func TestCheckAddInsufficientRemaining(t *testing.T) {
	v := NewValidator(&fakeProducts{products: map[uint]*models.Product{1: product(5, true)}})

	// Cart already holds 3 of 5; asking for 3 more leaves only 2 addable.
	_, err := v.CheckAdd(context.Background(), 1, 3, 3)
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Expected UnavailableError, got %v", err)
	}
	if unavailable.Remaining != 2 {
		t.Errorf("Expected 2 remaining, got %d", unavailable.Remaining)
	}
}

func TestCheckAddReaderError(t *testing.T) {
	readerErr := errors.New("connection reset")
	v := NewValidator(&fakeProducts{err: readerErr})

	_, err := v.CheckAdd(context.Background(), 1, 1, 0)
	if !errors.Is(err, readerErr) {
		t.Errorf("Expected reader error passed through, got %v", err)
	}
}
