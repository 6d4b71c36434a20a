package cart

import (
	"testing"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

func product(id int64, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Slug:     "p",
		Title:    "P",
		Price:    price,
		Category: domain.CategorySticks,
	}
}

func TestCart_AddMergesByProductID(t *testing.T) {
	var c Cart
	p := product(1, 1500)

	c.Add(p, 1)
	c.Add(p, 2)
	c.Add(p, 1)

	if c.Len() != 1 {
		t.Fatalf("expected a single line, got %d", c.Len())
	}
	if got := c.Items()[0].Quantity; got != 4 {
		t.Fatalf("expected merged quantity 4, got %d", got)
	}
}

func TestCart_AddDefaultsQuantityToOne(t *testing.T) {
	var c Cart
	c.Add(product(1, 100), 0)
	c.Add(product(2, 100), -5)

	for _, item := range c.Items() {
		if item.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", item.Quantity)
		}
	}
}

func TestCart_UpdateQuantityClampsToOne(t *testing.T) {
	var c Cart
	c.Add(product(1, 100), 3)

	c.UpdateQuantity(1, 0)
	if got := c.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}

	c.UpdateQuantity(1, -7)
	if c.Len() != 1 {
		t.Fatalf("negative quantity must never remove the line")
	}
	if got := c.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}

	c.UpdateQuantity(1, 5)
	if got := c.Items()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	var c Cart
	c.Add(product(1, 100), 2)

	c.Remove(99)

	if c.Len() != 1 || c.Items()[0].Quantity != 2 {
		t.Fatalf("cart changed by removing an absent id: %+v", c.Items())
	}
}

func TestCart_Totals(t *testing.T) {
	var c Cart
	c.Add(product(1, 1500), 2)
	c.Add(product(2, 5000), 1)

	if got := c.TotalPrice(); got != 8000 {
		t.Fatalf("expected total price 8000, got %d", got)
	}
	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}

	c.Clear()
	if c.TotalPrice() != 0 || c.TotalItems() != 0 || c.Len() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestCart_SnapshotDecoupledFromCatalog(t *testing.T) {
	var c Cart
	p := product(1, 1500)
	c.Add(p, 1)

	p.Price = 9000
	if got := c.TotalPrice(); got != 1500 {
		t.Fatalf("cart must keep the add-time price, got %d", got)
	}
}
