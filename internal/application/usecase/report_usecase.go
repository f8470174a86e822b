package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ReportUseCase exporta el listado filtrado de clientes como documento.
type ReportUseCase struct {
	repo      repository.CustomerRepository
	generator ports.CustomerReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.CustomerRepository, generator ports.CustomerReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// ExportPDF genera el PDF con hasta MaxPageSize clientes que cumplen el filtro.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, filter entity.CustomerFilter) ([]byte, error) {
	filter = NormalizeFilter(filter)
	list, total, err := uc.repo.List(ctx, filter, MaxPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("listar clientes para exportar: %w", err)
	}
	pdf, err := uc.generator.Generate(ports.CustomerReport{
		Title:     "Relatório de Clientes",
		Filter:    filter,
		Customers: list,
		Total:     total,
	})
	if err != nil {
		return nil, fmt.Errorf("generar PDF de clientes: %w", err)
	}
	return pdf, nil
}
