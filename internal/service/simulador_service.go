package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/model"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/repository"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/simerror"
)

const formatoFecha = "2006-01-02"

// SimuladorService orquesta la simulación completa: carga del catálogo,
// inicialización perezosa de precios, caminata diaria y emisión de
// registros en orden fecha-mayor, recorrido del catálogo.
type SimuladorService struct {
	repo       repository.CatalogoRepository
	precios    *PrecioService
	descuentos *DescuentoService

	catalogo *model.Catalogo
	// estados sobrevive entre llamadas a Generar: cada día camina desde el
	// resultado del día anterior.
	estados map[model.ClaveEstado]*model.EstadoPrecio
}

func NewSimuladorService(repo repository.CatalogoRepository, precios *PrecioService, descuentos *DescuentoService) *SimuladorService {
	return &SimuladorService{
		repo:       repo,
		precios:    precios,
		descuentos: descuentos,
		estados:    make(map[model.ClaveEstado]*model.EstadoPrecio),
	}
}

// CargarDatos lee el catálogo del repositorio. Debe invocarse antes de
// cualquier llamada a Generar.
func (s *SimuladorService) CargarDatos(ctx context.Context) error {
	catalogo, err := s.repo.Cargar(ctx)
	if err != nil {
		return err
	}
	s.catalogo = catalogo
	log.Info().
		Int("productos", len(catalogo.Productos)).
		Int("proveedores", len(catalogo.Proveedores)).
		Int("categorias", len(catalogo.Categorias)).
		Msg("datos del catálogo cargados")
	return nil
}

// Generar produce la secuencia completa de registros para el rango de
// fechas inclusivo [fechaInicial, fechaFinal].
func (s *SimuladorService) Generar(fechaInicial, fechaFinal string) ([]model.RegistroPrecio, error) {
	if s.catalogo == nil {
		return nil, simerror.ErrCatalogoNoCargado
	}
	inicio, err := time.Parse(formatoFecha, fechaInicial)
	if err != nil {
		return nil, fmt.Errorf("fecha inicial inválida %q: %w", fechaInicial, err)
	}
	fin, err := time.Parse(formatoFecha, fechaFinal)
	if err != nil {
		return nil, fmt.Errorf("fecha final inválida %q: %w", fechaFinal, err)
	}
	if inicio.After(fin) {
		return nil, simerror.ErrRangoFechas
	}

	s.inicializarPrecios()

	log.Info().Str("desde", fechaInicial).Str("hasta", fechaFinal).Msg("generando datos de scraping")

	var registros []model.RegistroPrecio
	for fecha := inicio; !fecha.After(fin); fecha = fecha.AddDate(0, 0, 1) {
		fechaStr := fecha.Format(formatoFecha)

		for _, producto := range s.catalogo.Productos {
			volatilidad := ""
			if categoria, ok := s.catalogo.CategoriaPorID(producto.CategoriaID); ok {
				volatilidad = categoria.VolatilidadTipica
			}

			for _, proveedor := range s.catalogo.Proveedores {
				if !proveedor.Activo {
					continue
				}
				clave := model.ClaveEstado{ProductoID: producto.ID, ProveedorID: proveedor.ID}
				estado := s.estados[clave]

				// El primer día usa el precio inicializado sin caminar.
				if fecha.After(inicio) {
					anterior := estado.Precio
					nuevo := s.precios.VariarPrecio(anterior, volatilidad)
					// La lista no se re-sortea: se reescala por el mismo
					// factor realizado para conservar el margen.
					estado.PrecioLista = estado.PrecioLista.Mul(nuevo.Div(anterior)).Round(2)
					estado.Precio = nuevo
				}

				fraccion := s.descuentos.DescuentoPara(fechaStr, producto.ID, proveedor.ID)
				registros = append(registros, emitirRegistro(fechaStr, producto, proveedor, estado, fraccion))
			}
		}

		if fecha.Day() == 1 || fecha.Equal(fin) {
			log.Info().Str("fecha", fechaStr).Msg("procesado")
		}
	}

	log.Info().Int("registros", len(registros)).Msg("generación completada")
	return registros, nil
}

// inicializarPrecios siembra el estado de precios de cada par
// (proveedor activo × producto). No-op si el estado ya existe.
func (s *SimuladorService) inicializarPrecios() {
	if len(s.estados) > 0 {
		return
	}
	log.Info().Msg("generando precios base")
	for _, producto := range s.catalogo.Productos {
		for _, proveedor := range s.catalogo.Proveedores {
			if !proveedor.Activo {
				continue
			}
			precio, lista := s.precios.GenerarPrecioBase(producto, proveedor)
			clave := model.ClaveEstado{ProductoID: producto.ID, ProveedorID: proveedor.ID}
			s.estados[clave] = &model.EstadoPrecio{Precio: precio, PrecioLista: lista}
		}
	}
}

// emitirRegistro aplica el descuento del día al precio vigente sin mutar el
// estado y arma el registro de salida. El precio de lista se emite sin
// descuento.
func emitirRegistro(fecha string, producto model.Producto, proveedor model.Proveedor, estado *model.EstadoPrecio, fraccion float64) model.RegistroPrecio {
	precioBase := estado.Precio
	conDescuento := precioBase.Mul(decimal.NewFromFloat(1 - fraccion)).Round(2)
	piso := decimal.NewFromInt(1)
	if conDescuento.LessThan(piso) {
		conDescuento = piso
	}

	descuento := 0
	if conDescuento.LessThan(precioBase) {
		descuento = int(math.Round((1 - conDescuento.InexactFloat64()/precioBase.InexactFloat64()) * 100))
	}

	return model.RegistroPrecio{
		Proveedor:   proveedor.Nombre,
		SKU:         producto.SKU,
		Nombre:      producto.Nombre,
		Marca:       producto.Marca,
		Tamano:      producto.Tamano,
		Precio:      conDescuento,
		PrecioLista: estado.PrecioLista,
		Descuento:   descuento,
		Fecha:       fecha,
	}
}
