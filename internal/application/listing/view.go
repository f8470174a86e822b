package listing

import (
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

// DefaultPageSize registros por página en la tabla.
const DefaultPageSize = 10

// Field criterio de filtro editable.
type Field int

const (
	FieldCode Field = iota
	FieldName
	FieldCity
	FieldPostalCode
)

// View estado inmutable de la tabla: cada método devuelve una copia nueva.
type View struct {
	records []dto.CustomerResponse
	filter  entity.CustomerFilter
	page    int
	size    int
}

// NewView crea una vista vacía en la página 1. size <= 0 usa DefaultPageSize.
func NewView(size int) View {
	if size <= 0 {
		size = DefaultPageSize
	}
	return View{page: 1, size: size}
}

// WithRecords reemplaza el conjunto de registros. La página se mantiene si sigue existiendo.
func (v View) WithRecords(records []dto.CustomerResponse) View {
	v.records = append([]dto.CustomerResponse(nil), records...)
	return v.clampPage()
}

// WithFilter cambia un criterio y vuelve a la página 1.
func (v View) WithFilter(field Field, value string) View {
	switch field {
	case FieldCode:
		v.filter.Code = value
	case FieldName:
		v.filter.Name = value
	case FieldCity:
		v.filter.City = value
	case FieldPostalCode:
		v.filter.PostalCode = value
	}
	v.page = 1
	return v
}

// ClearFilters quita todos los criterios y vuelve a la página 1.
func (v View) ClearFilters() View {
	v.filter = entity.CustomerFilter{}
	v.page = 1
	return v
}

// GoToPage navega a p, acotado a [1, Pages()].
func (v View) GoToPage(p int) View {
	v.page = p
	return v.clampPage()
}

func (v View) clampPage() View {
	pages := v.Pages()
	if v.page > pages {
		v.page = pages
	}
	if v.page < 1 {
		v.page = 1
	}
	return v
}

func (v View) Filter() entity.CustomerFilter { return v.filter }
func (v View) Page() int                     { return v.page }
func (v View) PageSize() int                 { return v.size }

// Records devuelve una copia de todos los registros cargados.
func (v View) Records() []dto.CustomerResponse {
	return append([]dto.CustomerResponse(nil), v.records...)
}

// Filtered registros que cumplen el filtro actual.
func (v View) Filtered() []dto.CustomerResponse {
	return Apply(v.records, v.filter)
}

// Visible página actual del conjunto filtrado.
func (v View) Visible() []dto.CustomerResponse {
	return Paginate(v.Filtered(), v.page, v.size)
}

func (v View) Pages() int           { return Pages(len(v.Filtered()), v.size) }
func (v View) HasPrev() bool        { return v.page > 1 }
func (v View) HasNext() bool        { return v.page < v.Pages() }
func (v View) ShowPagination() bool { return v.Pages() > 1 }

// Row fila de la tabla con los valores ya formateados para mostrar.
type Row struct {
	ID          entity.ID
	Code        string
	Name        string
	TaxID       string
	Phone       string
	City        string
	State       string
	PostalCode  string
	CreditLimit string
	ExpiresAt   string
}

// Rows filas formateadas de la página visible.
func (v View) Rows() []Row {
	visible := v.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		rows = append(rows, Row{
			ID:          r.ID,
			Code:        r.Code,
			Name:        r.Name,
			TaxID:       brdoc.FormatTaxID(r.TaxID),
			Phone:       brdoc.FormatPhone(r.Phone),
			City:        r.City,
			State:       r.State,
			PostalCode:  brdoc.FormatPostalCode(r.PostalCode.String()),
			CreditLimit: brdoc.FormatBRL(r.CreditLimit),
			ExpiresAt:   displayDate(r.ExpiresAt),
		})
	}
	return rows
}

// displayDate "2030-12-31" -> "31/12/2030"; cualquier otro formato se devuelve igual.
func displayDate(s string) string {
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return s
	}
	return s[8:10] + "/" + s[5:7] + "/" + s[0:4]
}
