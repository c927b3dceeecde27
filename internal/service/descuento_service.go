package service

import (
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/simerror"
)

type nivelDescuento struct {
	fraccion float64
	peso     float64
}

// Tabla base de pesos por nivel de descuento. El orden importa: la
// selección recorre los niveles acumulando masa en este orden.
var nivelesBase = []nivelDescuento{
	{0.03, 0.15},
	{0.05, 0.12},
	{0.10, 0.10},
	{0.15, 0.08},
	{0.20, 0.06},
	{0.25, 0.04},
	{0.30, 0.03},
	{0.35, 0.02},
	{0.50, 0.01},
}

// probSinDescuento es una constante fija, independiente de max_probability.
// La masa total puede no sumar 1; los sorteos que caen más allá de la masa
// acumulada se resuelven como sin-descuento.
const probSinDescuento = 0.80

// DescuentoService sortea el descuento diario de cada tripleta
// (fecha, producto, proveedor) de forma determinista: la misma tripleta
// produce siempre el mismo resultado, sin importar el orden de las llamadas
// ni cualquier otro sorteo del proceso.
type DescuentoService struct {
	niveles []nivelDescuento
}

// NewDescuentoService escala la tabla base para que la probabilidad total
// de descuento sea maxProbability. Valida maxProbability en [0, 1].
func NewDescuentoService(maxProbability float64) (*DescuentoService, error) {
	if maxProbability < 0 || maxProbability > 1 {
		return nil, simerror.ErrMaxProbability
	}

	total := 0.0
	for _, n := range nivelesBase {
		total += n.peso
	}
	escala := 1.0
	if total > 0 {
		escala = maxProbability / total
	}

	niveles := make([]nivelDescuento, len(nivelesBase))
	for i, n := range nivelesBase {
		niveles[i] = nivelDescuento{fraccion: n.fraccion, peso: n.peso * escala}
	}
	return &DescuentoService{niveles: niveles}, nil
}

// DescuentoPara devuelve la fracción de descuento (ej. 0.10) para la
// tripleta, o 0 si no hay descuento.
//
// La semilla sale de un hash estable de la tripleta más un sufijo fijo,
// y alimenta una fuente rand local de un solo uso. Jamás se toca el
// generador global: eso rompería la independencia del orden de ejecución.
func (s *DescuentoService) DescuentoPara(fecha string, productoID, proveedorID int64) float64 {
	clave := fmt.Sprintf("%s_%d_%d_descuento", fecha, productoID, proveedorID)
	semilla := int64(xxhash.Sum64String(clave) % 1_000_000)
	rng := rand.New(rand.NewSource(semilla))

	r := rng.Float64()
	if r <= probSinDescuento {
		return 0.0
	}

	acumulada := probSinDescuento
	for _, n := range s.niveles {
		acumulada += n.peso
		if r <= acumulada {
			return n.fraccion
		}
	}
	// La masa total puede ser menor a 1: el excedente es sin-descuento.
	return 0.0
}
