package model

// Niveles de precio reconocidos para un proveedor. Un nivel desconocido
// se trata como "medio" (multiplicador 1.0) al generar precios.
const (
	NivelEconomico = "economico"
	NivelMedio     = "medio"
	NivelPremium   = "premium"
)

// Proveedor es una entrada inmutable del catálogo (dim_proveedor).
// Los proveedores inactivos quedan excluidos de toda la generación.
type Proveedor struct {
	ID          int64
	Nombre      string
	Activo      bool
	NivelPrecio string
}
