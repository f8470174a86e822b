// Package listing filtra y pagina en memoria el conjunto de clientes ya obtenido de la API.
package listing

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

// Apply devuelve los registros que cumplen todos los criterios no vacíos, en el mismo orden.
// Con filtro vacío devuelve records tal cual.
func Apply(records []dto.CustomerResponse, f entity.CustomerFilter) []dto.CustomerResponse {
	if f.IsEmpty() {
		return records
	}
	out := make([]dto.CustomerResponse, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// Matches texto sin distinguir mayúsculas; el CEP como substring de sus 8 dígitos.
func Matches(r dto.CustomerResponse, f entity.CustomerFilter) bool {
	return containsFold(r.Code, f.Code) &&
		containsFold(r.Name, f.Name) &&
		containsFold(r.City, f.City) &&
		containsPostalCode(r.PostalCode, f.PostalCode)
}

func containsFold(field, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(field), fold.String(query))
}

func containsPostalCode(pc entity.PostalCode, query string) bool {
	if query == "" {
		return true
	}
	digits := brdoc.Digits(query)
	if digits == "" {
		return false
	}
	return strings.Contains(pc.String(), digits)
}

// Pages ceil(count / size). 0 si no hay registros.
func Pages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate devuelve items[(page-1)*size : (page-1)*size+size], acotado a los límites.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
