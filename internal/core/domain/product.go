package domain

// Product is the minimal catalog entry checkout needs: an existence check and
// the current price to snapshot. Catalog management lives elsewhere.
type Product struct {
	ID          string
	SKU         string
	Name        string
	PriceCents  int64
	WeightGrams int
	Active      bool
}
