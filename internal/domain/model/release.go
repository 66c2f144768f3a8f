package model

// ReleaseNote is a single published note for a product.
type ReleaseNote struct {
	Type        string
	Description string
}

// Product groups the new release notes of one product, in store order.
type Product struct {
	Name         string
	ReleaseNotes []ReleaseNote
}
