package ports

import (
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// CustomerReport datos del listado exportable.
type CustomerReport struct {
	Title     string
	Filter    entity.CustomerFilter
	Customers []*entity.Customer
	Total     int
}

// CustomerReportGenerator genera el documento binario (PDF) del listado de clientes.
type CustomerReportGenerator interface {
	Generate(report CustomerReport) ([]byte, error)
}
