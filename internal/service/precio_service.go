package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/model"
)

// Rangos de precios base por categoría, en pesos mexicanos.
var bandasPrecioCategoria = map[int64][2]float64{
	1:  {45, 120}, // Aceite de Oliva
	2:  {18, 35},  // Leche
	3:  {12, 25},  // Gaseosa
	4:  {15, 40},  // Papas Fritas
	5:  {25, 60},  // Detergente Polvo
	6:  {20, 45},  // Pan Integral
	7:  {8, 20},   // Verduras Enlatadas
	8:  {80, 180}, // Pollo Congelado
	9:  {35, 80},  // Cereales
	10: {45, 120}, // Shampoo
	11: {8, 18},   // Salsa de Tomate
	12: {60, 140}, // Jamón
	13: {15, 35},  // Jugo de Naranja
	14: {25, 55},  // Bebidas Energéticas
	15: {12, 30},  // Galletas
	16: {20, 45},  // Suavizante
	17: {8, 20},   // Jabón de Barra
	18: {15, 35},  // Arroz
	19: {25, 60},  // Helados
	20: {40, 100}, // Pasteles
}

// bandaPorDefecto cubre categorías sin banda asignada.
var bandaPorDefecto = [2]float64{10, 50}

type factorTamano struct {
	token  string
	factor float64
}

// Factores por descriptor de tamaño. Dentro de cada familia gana la
// primera coincidencia por contención de substring, en este orden.
var (
	factoresVolumen = []factorTamano{
		{"250ml", 0.7}, {"500ml", 0.9}, {"1L", 1.0}, {"1.5L", 1.3},
		{"2L", 1.6}, {"3L", 2.2}, {"5L", 3.5},
	}
	factoresPeso = []factorTamano{
		{"200g", 0.6}, {"400g", 0.8}, {"500g", 0.9}, {"750g", 1.1},
		{"1kg", 1.4}, {"2kg", 2.5},
	}
	factoresPiezas = []factorTamano{
		{"6 piezas", 1.2}, {"12 piezas", 2.0}, {"24 piezas", 3.5},
	}
)

// Límites de variación diaria según la volatilidad típica de la categoría.
var rangosVariacion = map[string]float64{
	model.VolatilidadBaja:  0.03,
	model.VolatilidadMedia: 0.08,
	model.VolatilidadAlta:  0.15,
}

const variacionPorDefecto = 0.05

// PrecioService genera precios base y aplica la caminata diaria de precios.
// Todos los sorteos no deterministas salen de un único *rand.Rand propio,
// nunca del generador global del proceso.
type PrecioService struct {
	rng *rand.Rand
}

// NewPrecioService construye el servicio. Con rng nil usa una semilla de
// reloj; los tests inyectan una fuente sembrada para reproducibilidad.
func NewPrecioService(rng *rand.Rand) *PrecioService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PrecioService{rng: rng}
}

// GenerarPrecioBase deriva el precio base y el precio de lista inicial de
// un par producto-proveedor: banda de la categoría, multiplicador del nivel
// del proveedor y multiplicador por tamaño, con lista 15–35% sobre la base.
func (s *PrecioService) GenerarPrecioBase(producto model.Producto, proveedor model.Proveedor) (precio, precioLista decimal.Decimal) {
	banda, ok := bandasPrecioCategoria[producto.CategoriaID]
	if !ok {
		banda = bandaPorDefecto
	}
	crudo := banda[0] + s.rng.Float64()*(banda[1]-banda[0])

	base := crudo * multiplicadorProveedor(proveedor.NivelPrecio) * multiplicadorTamano(producto.Tamano)
	lista := base * (1.15 + s.rng.Float64()*0.20)

	return decimal.NewFromFloat(base).Round(2), decimal.NewFromFloat(lista).Round(2)
}

// VariarPrecio avanza un precio un día aplicando un paso porcentual
// uniforme acotado por la clase de volatilidad, con piso en 1 peso.
func (s *PrecioService) VariarPrecio(anterior decimal.Decimal, volatilidad string) decimal.Decimal {
	limite, ok := rangosVariacion[volatilidad]
	if !ok {
		limite = variacionPorDefecto
	}
	variacion := -limite + s.rng.Float64()*2*limite

	nuevo := anterior.InexactFloat64() * (1 + variacion)
	if nuevo < 1.0 {
		nuevo = 1.0
	}
	return decimal.NewFromFloat(nuevo).Round(2)
}

func multiplicadorProveedor(nivel string) float64 {
	switch nivel {
	case model.NivelEconomico:
		return 0.85
	case model.NivelPremium:
		return 1.25
	default:
		return 1.0
	}
}

func multiplicadorTamano(tamano string) float64 {
	var factores []factorTamano
	switch {
	case strings.Contains(tamano, "ml") || strings.Contains(tamano, "L"):
		factores = factoresVolumen
	case strings.Contains(tamano, "g") || strings.Contains(tamano, "kg"):
		factores = factoresPeso
	case strings.Contains(tamano, "piezas"):
		factores = factoresPiezas
	}
	for _, f := range factores {
		if strings.Contains(tamano, f.token) {
			return f.factor
		}
	}
	return 1.0
}
