package model

import "github.com/shopspring/decimal"

// ClaveEstado identifica el par (producto, proveedor) dueño de un estado.
type ClaveEstado struct {
	ProductoID  int64
	ProveedorID int64
}

// EstadoPrecio es el único estado mutable del simulador: el precio vigente
// de un par producto-proveedor. Se crea una vez por clave al inicializar y
// la caminata de precios lo actualiza una vez por fecha; la aplicación de
// descuentos nunca lo modifica.
type EstadoPrecio struct {
	Precio      decimal.Decimal
	PrecioLista decimal.Decimal
}
