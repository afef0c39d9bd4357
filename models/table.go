package models

// Table adalah data referensi statis untuk meja restoran.
type Table struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
}
