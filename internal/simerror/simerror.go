// Package simerror define los errores de dominio del simulador. Todos los
// errores fatales que ve el caller pasan por aquí para que el entrypoint
// pueda distinguir fallas de carga, de validación y de uso.
package simerror

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogoNoCargado indica que se invocó la generación antes de
	// cargar el catálogo.
	ErrCatalogoNoCargado = errors.New("primero debe cargar los datos con CargarDatos")

	// ErrRangoFechas indica que la fecha inicial es posterior a la final.
	ErrRangoFechas = errors.New("la fecha inicial debe ser anterior o igual a la fecha final")

	// ErrMaxProbability indica un valor de max_probability fuera de [0, 1].
	ErrMaxProbability = errors.New("max_probability debe estar entre 0 y 1")
)

// CargaError envuelve una falla al leer o parsear un archivo del catálogo,
// conservando el archivo (y fila, si aplica) donde ocurrió.
type CargaError struct {
	Archivo string
	Fila    int // 0 si el error no es de una fila puntual
	Err     error
}

func (e *CargaError) Error() string {
	if e.Fila > 0 {
		return fmt.Sprintf("error al cargar %s (fila %d): %v", e.Archivo, e.Fila, e.Err)
	}
	return fmt.Sprintf("error al cargar %s: %v", e.Archivo, e.Err)
}

func (e *CargaError) Unwrap() error { return e.Err }

// NuevaCargaError construye un CargaError sin fila asociada.
func NuevaCargaError(archivo string, err error) *CargaError {
	return &CargaError{Archivo: archivo, Err: err}
}

// NuevaCargaErrorFila construye un CargaError apuntando a una fila concreta.
func NuevaCargaErrorFila(archivo string, fila int, err error) *CargaError {
	return &CargaError{Archivo: archivo, Fila: fila, Err: err}
}
