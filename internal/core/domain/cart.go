package domain

import "time"

type CartItem struct {
	ProductID string
	Quantity  int
}

// Cart holds one customer's in-progress selection. Items are unique by
// product; adding an existing product merges quantities.
type Cart struct {
	OwnerID   string
	Items     []CartItem
	UpdatedAt time.Time
}

func NewCart(ownerID string) *Cart {
	return &Cart{
		OwnerID:   ownerID,
		Items:     []CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Cart) AddItem(productID string, quantity int) error {
	if productID == "" {
		return &ValidationError{Field: "product_id", Reason: "must not be empty"}
	}
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}

	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity += quantity
			c.touch()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	c.touch()
	return nil
}

// RemoveItem deletes the entry if present; removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets the quantity for a product, removing the entry when the
// new quantity is zero or negative.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	c.touch()
}

// Clear empties the items but keeps the cart record.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.touch()
}

func (c *Cart) TotalItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
