package checkout

import (
	"errors"
	"strings"
	"testing"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

func stocked(stock int) *models.Product {
	return &models.Product{ID: 1, Name: "Lace Teddy", Stock: stock, InStock: stock > 0}
}

func TestReserveStockDecrements(t *testing.T) {
	p := stocked(5)
	if err := reserveStock(p, 3); err != nil {
		t.Fatalf("Expected reservation to succeed, got: %v", err)
	}
	if p.Stock != 2 {
		t.Errorf("Expected stock 2, got %d", p.Stock)
	}
	if !p.InStock {
		t.Error("Expected product still in stock")
	}
}

func TestReserveStockExhaustsToZero(t *testing.T) {
	p := stocked(3)
	if err := reserveStock(p, 3); err != nil {
		t.Fatalf("Expected reservation to succeed, got: %v", err)
	}
	if p.Stock != 0 {
		t.Errorf("Expected stock 0, got %d", p.Stock)
	}
	if p.InStock {
		t.Error("Expected in-stock flag cleared at zero")
	}
}

func TestReserveStockNeverOversells(t *testing.T) {
	p := stocked(2)
	err := reserveStock(p, 3)

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Expected InsufficientStockError, got %v", err)
	}
	if insufficient.Remaining != 2 {
		t.Errorf("Expected remaining 2 in error, got %d", insufficient.Remaining)
	}
	if p.Stock != 2 {
		t.Errorf("Refused reservation must not mutate stock, got %d", p.Stock)
	}
}

func TestReserveStockRefusesSoldOut(t *testing.T) {
	p := stocked(0)
	err := reserveStock(p, 1)

	var oos *OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("Expected OutOfStockError, got %v", err)
	}
	if !strings.Contains(err.Error(), "out of stock") {
		t.Errorf("Expected substring contract, got %q", err.Error())
	}
}

func TestReserveStockRefusesFlaggedOff(t *testing.T) {
	p := &models.Product{ID: 1, Name: "Lace Teddy", Stock: 4, InStock: false}
	if err := reserveStock(p, 1); err == nil {
		t.Fatal("Expected refusal when stock flag is off")
	}
	if p.Stock != 4 {
		t.Errorf("Expected stock untouched, got %d", p.Stock)
	}
}

// Sequential reservations against stock N sell at most N total units, in
// whatever order the requests land.
func TestReserveStockSequenceCannotExceedStock(t *testing.T) {
	p := stocked(5)
	requests := []int{2, 2, 2} // third must fail, 4 of 5 already sold
	sold := 0
	for _, q := range requests {
		if err := reserveStock(p, q); err == nil {
			sold += q
		}
	}
	if sold > 5 {
		t.Errorf("Oversold: %d units from stock of 5", sold)
	}
	if p.Stock != 5-sold {
		t.Errorf("Ledger drift: stock %d, sold %d", p.Stock, sold)
	}
}

func TestGenerateOrderRefUnique(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	if a == b {
		t.Error("Expected distinct refs")
	}
	if len(a) <= len("20060102150405-") {
		t.Errorf("Ref looks truncated: %q", a)
	}
}
