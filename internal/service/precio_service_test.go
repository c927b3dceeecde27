package service

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/model"
)

func precioServiceConSemilla(semilla int64) *PrecioService {
	return NewPrecioService(rand.New(rand.NewSource(semilla)))
}

func TestGenerarPrecioBaseRatioLista(t *testing.T) {
	svc := precioServiceConSemilla(1)
	producto := model.Producto{ID: 1, CategoriaID: 2, Tamano: "1L"}
	proveedor := model.Proveedor{ID: 1, NivelPrecio: model.NivelMedio}

	for i := 0; i < 200; i++ {
		precio, lista := svc.GenerarPrecioBase(producto, proveedor)
		ratio := lista.Div(precio).InexactFloat64()
		// margen de 0.001 por el redondeo a 2 decimales de ambos precios
		assert.GreaterOrEqual(t, ratio, 1.149)
		assert.LessOrEqual(t, ratio, 1.351)
	}
}

func TestGenerarPrecioBaseBandaYNivel(t *testing.T) {
	svc := precioServiceConSemilla(2)
	// Categoría 2 (Leche): banda [18, 35]; tamaño 1L no multiplica.
	producto := model.Producto{ID: 1, CategoriaID: 2, Tamano: "1L"}

	casos := []struct {
		nivel    string
		min, max float64
	}{
		{model.NivelEconomico, 18 * 0.85, 35 * 0.85},
		{model.NivelMedio, 18, 35},
		{model.NivelPremium, 18 * 1.25, 35 * 1.25},
		{"desconocido", 18, 35},
	}
	for _, caso := range casos {
		for i := 0; i < 100; i++ {
			precio, _ := svc.GenerarPrecioBase(producto, model.Proveedor{NivelPrecio: caso.nivel})
			v := precio.InexactFloat64()
			assert.GreaterOrEqual(t, v, caso.min-0.01, "nivel %s", caso.nivel)
			assert.LessOrEqual(t, v, caso.max+0.01, "nivel %s", caso.nivel)
		}
	}
}

func TestGenerarPrecioBaseCategoriaSinBanda(t *testing.T) {
	svc := precioServiceConSemilla(3)
	// Categoría inexistente: banda por defecto [10, 50], sin error.
	producto := model.Producto{ID: 1, CategoriaID: 999, Tamano: "sin descriptor"}

	for i := 0; i < 100; i++ {
		precio, _ := svc.GenerarPrecioBase(producto, model.Proveedor{NivelPrecio: model.NivelMedio})
		v := precio.InexactFloat64()
		assert.GreaterOrEqual(t, v, 10-0.01)
		assert.LessOrEqual(t, v, 50+0.01)
	}
}

func TestMultiplicadorTamano(t *testing.T) {
	casos := map[string]float64{
		"250ml":      0.7,
		"500ml":      0.9,
		"1L":         1.0,
		"1.5L":       1.3,
		"2L":         1.6,
		"3L":         2.2,
		"5L":         3.5,
		"200g":       0.6,
		"400g":       0.8,
		"500g":       0.9,
		"750g":       1.1,
		"1kg":        1.4,
		"2kg":        2.5,
		"6 piezas":   1.2,
		"12 piezas":  2.0,
		"24 piezas":  3.5,
		"700ml":      1.0, // familia volumen pero sin token conocido
		"unidad":     1.0,
		"Botella 2L": 1.6, // contención de substring, no igualdad
	}
	for tamano, esperado := range casos {
		assert.Equal(t, esperado, multiplicadorTamano(tamano), "tamaño %q", tamano)
	}
}

func TestVariarPrecioLimites(t *testing.T) {
	svc := precioServiceConSemilla(4)
	anterior := decimal.NewFromInt(100)

	casos := []struct {
		volatilidad string
		min, max    float64
	}{
		{model.VolatilidadBaja, 97, 103},
		{model.VolatilidadMedia, 92, 108},
		{model.VolatilidadAlta, 85, 115},
		{"rara", 95, 105}, // clase desconocida: ±5%
	}
	for _, caso := range casos {
		for i := 0; i < 300; i++ {
			nuevo := svc.VariarPrecio(anterior, caso.volatilidad).InexactFloat64()
			assert.GreaterOrEqual(t, nuevo, caso.min-0.01, "volatilidad %s", caso.volatilidad)
			assert.LessOrEqual(t, nuevo, caso.max+0.01, "volatilidad %s", caso.volatilidad)
		}
	}
}

func TestVariarPrecioPiso(t *testing.T) {
	svc := precioServiceConSemilla(5)
	piso := decimal.NewFromInt(1)
	anterior := decimal.NewFromFloat(1.05)

	bajoPiso := 0
	for i := 0; i < 500; i++ {
		nuevo := svc.VariarPrecio(anterior, model.VolatilidadAlta)
		require.True(t, nuevo.GreaterThanOrEqual(piso), "precio %s por debajo del piso", nuevo)
		if nuevo.Equal(piso) {
			bajoPiso++
		}
	}
	// Con ±15% sobre 1.05, una parte de los sorteos debe tocar el piso.
	assert.Positive(t, bajoPiso)
}
