package model

// Producto es una entrada inmutable del catálogo (dim_producto).
// Nunca se modifica durante una corrida del simulador.
type Producto struct {
	ID          int64
	CategoriaID int64
	SKU         string
	Nombre      string
	Marca       string
	// Tamano es el descriptor textual de tamaño, ej. "500ml", "1kg", "12 piezas".
	Tamano string
}
