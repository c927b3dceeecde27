package model

// Clases de volatilidad típica por categoría. Una clase desconocida
// usa el rango de variación por defecto (±5%).
const (
	VolatilidadBaja  = "baja"
	VolatilidadMedia = "media"
	VolatilidadAlta  = "alta"
)

// Categoria es una entrada inmutable del catálogo (dim_categoria).
type Categoria struct {
	ID                int64
	VolatilidadTipica string
}
