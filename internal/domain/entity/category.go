package entity

// Category representa una categoría de productos. Name es único; Image es una
// URL opcional. Se crea bajo demanda cuando un producto llega con el nombre de
// una categoría nueva (get-or-create).
type Category struct {
	ID        int64
	Name      string
	Image     string
	RowStatus bool
}
