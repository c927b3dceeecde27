// Package infra contiene los adaptadores de salida del simulador: las tres
// variantes de exportación a JSON que consumen la secuencia de registros.
package infra

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/model"
)

// ExportarJSON escribe toda la secuencia como un único array JSON. Con ruta
// vacía genera un nombre con timestamp en el directorio actual. Devuelve la
// ruta escrita.
func ExportarJSON(datos []model.RegistroPrecio, ruta string) (string, error) {
	if ruta == "" {
		ruta = fmt.Sprintf("datos_scraping_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := escribirJSON(ruta, datos); err != nil {
		return "", err
	}
	log.Info().Str("archivo", ruta).Msg("datos exportados")
	return ruta, nil
}

// ExportarPorFecha escribe un archivo scraping_<fecha>.json por cada fecha
// distinta, agrupando los registros que la comparten.
func ExportarPorFecha(datos []model.RegistroPrecio, directorio string) error {
	if err := os.MkdirAll(directorio, 0o755); err != nil {
		return err
	}

	grupos := make(map[string][]model.RegistroPrecio)
	var fechas []string
	for _, registro := range datos {
		if _, ok := grupos[registro.Fecha]; !ok {
			fechas = append(fechas, registro.Fecha)
		}
		grupos[registro.Fecha] = append(grupos[registro.Fecha], registro)
	}

	for _, fecha := range fechas {
		ruta := filepath.Join(directorio, fmt.Sprintf("scraping_%s.json", fecha))
		if err := escribirJSON(ruta, grupos[fecha]); err != nil {
			return err
		}
	}

	log.Info().Str("directorio", directorio).Int("archivos", len(fechas)).Msg("datos exportados por fecha")
	return nil
}

// ExportarPorFechaYProveedor escribe un archivo por cada par
// (fecha, proveedor): <directorio>/<fecha>/<proveedor_sanitizado>.json.
func ExportarPorFechaYProveedor(datos []model.RegistroPrecio, directorio string) error {
	if err := os.MkdirAll(directorio, 0o755); err != nil {
		return err
	}

	type claveGrupo struct {
		fecha     string
		proveedor string
	}
	grupos := make(map[claveGrupo][]model.RegistroPrecio)
	var claves []claveGrupo
	for _, registro := range datos {
		clave := claveGrupo{fecha: registro.Fecha, proveedor: registro.Proveedor}
		if _, ok := grupos[clave]; !ok {
			claves = append(claves, clave)
		}
		grupos[clave] = append(grupos[clave], registro)
	}

	fechas := make(map[string]struct{})
	for _, clave := range claves {
		dirFecha := filepath.Join(directorio, clave.fecha)
		if _, ok := fechas[clave.fecha]; !ok {
			if err := os.MkdirAll(dirFecha, 0o755); err != nil {
				return err
			}
			fechas[clave.fecha] = struct{}{}
		}
		ruta := filepath.Join(dirFecha, SanitizarProveedor(clave.proveedor)+".json")
		if err := escribirJSON(ruta, grupos[clave]); err != nil {
			return err
		}
	}

	log.Info().
		Str("directorio", directorio).
		Int("fechas", len(fechas)).
		Int("archivos", len(claves)).
		Msg("datos exportados por fecha y proveedor")
	return nil
}

// SanitizarProveedor vuelve un nombre de proveedor utilizable como nombre
// de archivo: espacios a guión bajo; comas y puntos fuera; barras a guión
// bajo.
func SanitizarProveedor(nombre string) string {
	r := strings.NewReplacer(" ", "_", ",", "", ".", "", "/", "_")
	return r.Replace(nombre)
}

func escribirJSON(ruta string, datos []model.RegistroPrecio) error {
	if datos == nil {
		datos = []model.RegistroPrecio{}
	}
	f, err := os.Create(ruta)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Los nombres y valores traen acentos y "ñ"; se escriben tal cual.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(datos); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
