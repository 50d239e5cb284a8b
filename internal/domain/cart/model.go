package cart

import "github.com/shopspring/decimal"

// Item es una línea del carrito. Como máximo una por ProductID.
type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  *string         `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	Items []Item `json:"items"`
}

// Clone copia las líneas para poder mutar sin tocar el original.
func (c Cart) Clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

// AddItem suma qty si el producto ya está; si no, agrega la línea. qty <= 0 cuenta como 1.
func (c *Cart) AddItem(item Item, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.Items = append(c.Items, item)
}

// RemoveItem borra la línea sin importar la cantidad.
func (c *Cart) RemoveItem(productID string) {
	out := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	c.Items = out
}

// UpdateQuantity fija la cantidad (no suma). q <= 0 equivale a RemoveItem.
func (c *Cart) UpdateQuantity(productID string, q int) {
	if q <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = q
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total se recalcula siempre; no se guarda.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Count es la cantidad total de unidades.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Quantity(productID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}
