package model

import "github.com/shopspring/decimal"

func init() {
	// Los pipelines downstream esperan precio/precio_lista como números
	// JSON, no como strings entre comillas.
	decimal.MarshalJSONWithoutQuotes = true
}

// RegistroPrecio es el equivalente de una observación de scraping: el
// precio de un producto en un proveedor para una fecha. Inmutable una vez
// emitido.
type RegistroPrecio struct {
	Proveedor   string          `json:"proveedor"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	Tamano      string          `json:"tamaño"`
	Precio      decimal.Decimal `json:"precio"`
	PrecioLista decimal.Decimal `json:"precio_lista"`
	// Descuento es el porcentaje entero efectivamente aplicado (0 si no hubo).
	Descuento int    `json:"descuento"`
	Fecha     string `json:"fecha"`
}
