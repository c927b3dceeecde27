package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/model"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/simerror"
)

// CatalogoRepository define el contrato de solo-lectura del catálogo.
// Los servicios dependen de esta interfaz y no de la implementación
// concreta basada en archivos, lo que permite tests unitarios con stubs.
type CatalogoRepository interface {
	Cargar(ctx context.Context) (*model.Catalogo, error)
}

// Nombres base de los datasets dimensionales. Cada uno se busca primero
// como .csv y, si no existe, como .xlsx (primera hoja, mismas columnas).
const (
	archivoProductos   = "dim_producto"
	archivoProveedores = "dim_proveedor"
	archivoCategorias  = "dim_categoria"
)

type archivoCatalogoRepo struct {
	dir string
}

func NewCatalogoRepository(dir string) CatalogoRepository {
	return &archivoCatalogoRepo{dir: dir}
}

func (r *archivoCatalogoRepo) Cargar(_ context.Context) (*model.Catalogo, error) {
	productos, err := r.cargarProductos()
	if err != nil {
		return nil, err
	}
	proveedores, err := r.cargarProveedores()
	if err != nil {
		return nil, err
	}
	categorias, err := r.cargarCategorias()
	if err != nil {
		return nil, err
	}
	return model.NuevoCatalogo(productos, proveedores, categorias), nil
}

func (r *archivoCatalogoRepo) cargarProductos() ([]model.Producto, error) {
	archivo, tabla, err := r.leerTabla(archivoProductos)
	if err != nil {
		return nil, err
	}
	cols, err := indiceColumnas(archivo, tabla, "producto_id", "categoria_id", "sku", "nombre", "marca", "tamaño")
	if err != nil {
		return nil, err
	}
	productos := make([]model.Producto, 0, len(tabla)-1)
	for i, fila := range tabla[1:] {
		nfila := i + 2 // 1-based, contando el encabezado
		id, err := celdaEntera(fila, cols["producto_id"])
		if err != nil {
			return nil, simerror.NuevaCargaErrorFila(archivo, nfila, fmt.Errorf("producto_id: %w", err))
		}
		categoriaID, err := celdaEntera(fila, cols["categoria_id"])
		if err != nil {
			return nil, simerror.NuevaCargaErrorFila(archivo, nfila, fmt.Errorf("categoria_id: %w", err))
		}
		productos = append(productos, model.Producto{
			ID:          id,
			CategoriaID: categoriaID,
			SKU:         celda(fila, cols["sku"]),
			Nombre:      celda(fila, cols["nombre"]),
			Marca:       celda(fila, cols["marca"]),
			Tamano:      celda(fila, cols["tamaño"]),
		})
	}
	return productos, nil
}

func (r *archivoCatalogoRepo) cargarProveedores() ([]model.Proveedor, error) {
	archivo, tabla, err := r.leerTabla(archivoProveedores)
	if err != nil {
		return nil, err
	}
	cols, err := indiceColumnas(archivo, tabla, "proveedor_id", "nombre", "activo", "nivel_precio")
	if err != nil {
		return nil, err
	}
	proveedores := make([]model.Proveedor, 0, len(tabla)-1)
	for i, fila := range tabla[1:] {
		nfila := i + 2
		id, err := celdaEntera(fila, cols["proveedor_id"])
		if err != nil {
			return nil, simerror.NuevaCargaErrorFila(archivo, nfila, fmt.Errorf("proveedor_id: %w", err))
		}
		activo, err := celdaBool(fila, cols["activo"])
		if err != nil {
			return nil, simerror.NuevaCargaErrorFila(archivo, nfila, fmt.Errorf("activo: %w", err))
		}
		proveedores = append(proveedores, model.Proveedor{
			ID:          id,
			Nombre:      celda(fila, cols["nombre"]),
			Activo:      activo,
			NivelPrecio: celda(fila, cols["nivel_precio"]),
		})
	}
	return proveedores, nil
}

func (r *archivoCatalogoRepo) cargarCategorias() ([]model.Categoria, error) {
	archivo, tabla, err := r.leerTabla(archivoCategorias)
	if err != nil {
		return nil, err
	}
	cols, err := indiceColumnas(archivo, tabla, "categoria_id", "volatilidad_tipica")
	if err != nil {
		return nil, err
	}
	categorias := make([]model.Categoria, 0, len(tabla)-1)
	for i, fila := range tabla[1:] {
		nfila := i + 2
		id, err := celdaEntera(fila, cols["categoria_id"])
		if err != nil {
			return nil, simerror.NuevaCargaErrorFila(archivo, nfila, fmt.Errorf("categoria_id: %w", err))
		}
		categorias = append(categorias, model.Categoria{
			ID:                id,
			VolatilidadTipica: celda(fila, cols["volatilidad_tipica"]),
		})
	}
	return categorias, nil
}

// leerTabla resuelve el archivo para un dataset (csv primero, xlsx como
// alternativa) y devuelve todas sus filas, encabezado incluido.
func (r *archivoCatalogoRepo) leerTabla(base string) (string, [][]string, error) {
	rutaCSV := filepath.Join(r.dir, base+".csv")
	if _, err := os.Stat(rutaCSV); err == nil {
		tabla, err := leerCSV(rutaCSV)
		if err != nil {
			return "", nil, simerror.NuevaCargaError(rutaCSV, err)
		}
		return rutaCSV, tabla, nil
	}
	rutaXLSX := filepath.Join(r.dir, base+".xlsx")
	if _, err := os.Stat(rutaXLSX); err == nil {
		tabla, err := leerXLSX(rutaXLSX)
		if err != nil {
			return "", nil, simerror.NuevaCargaError(rutaXLSX, err)
		}
		return rutaXLSX, tabla, nil
	}
	return "", nil, simerror.NuevaCargaError(rutaCSV, fs.ErrNotExist)
}

func leerCSV(ruta string) ([][]string, error) {
	f, err := os.Open(ruta)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	tabla, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	// Excel en Windows suele anteponer un BOM al primer encabezado
	if len(tabla) > 0 && len(tabla[0]) > 0 {
		tabla[0][0] = strings.TrimPrefix(tabla[0][0], "\uFEFF")
	}
	return tabla, nil
}

func leerXLSX(ruta string) ([][]string, error) {
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}
	return f.GetRows(hojas[0])
}

// indiceColumnas mapea cada columna requerida a su posición en el
// encabezado, sin importar el orden en que vengan.
func indiceColumnas(archivo string, tabla [][]string, requeridas ...string) (map[string]int, error) {
	if len(tabla) == 0 {
		return nil, simerror.NuevaCargaError(archivo, fmt.Errorf("archivo vacío, falta el encabezado"))
	}
	idx := make(map[string]int, len(tabla[0]))
	for i, nombre := range tabla[0] {
		idx[strings.ToLower(strings.TrimSpace(nombre))] = i
	}
	cols := make(map[string]int, len(requeridas))
	for _, col := range requeridas {
		pos, ok := idx[col]
		if !ok {
			return nil, simerror.NuevaCargaError(archivo, fmt.Errorf("falta la columna requerida %q", col))
		}
		cols[col] = pos
	}
	return cols, nil
}

func celda(fila []string, pos int) string {
	if pos >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[pos])
}

func celdaEntera(fila []string, pos int) (int64, error) {
	v := celda(fila, pos)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("valor entero inválido %q", v)
	}
	return n, nil
}

func celdaBool(fila []string, pos int) (bool, error) {
	switch strings.ToLower(celda(fila, pos)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("valor booleano inválido %q", celda(fila, pos))
	}
}
