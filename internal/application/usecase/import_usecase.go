package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var errDryRun = errors.New("dry run")

// ImportUseCase carga masiva de clientes en una sola transacción.
type ImportUseCase struct {
	tx   ports.CustomerTxRunner
	opts []CustomerOption
}

// NewImportUseCase construye el caso de uso; opts se aplican a la validación de cada fila.
func NewImportUseCase(tx ports.CustomerTxRunner, opts ...CustomerOption) *ImportUseCase {
	return &ImportUseCase{tx: tx, opts: opts}
}

// Import da de alta las filas válidas a nombre de userID. Las filas con errores de formato o
// validación se descartan y se informan; cualquier otro error (p. ej. código duplicado)
// revierte toda la importación. Con dryRun se valida todo y no se persiste nada.
func (uc *ImportUseCase) Import(ctx context.Context, userID entity.ID, rows []dto.ImportRow, dryRun bool) (*dto.ImportReport, error) {
	report := &dto.ImportReport{DryRun: dryRun}
	err := uc.tx.RunCustomers(ctx, func(repo repository.CustomerRepository) error {
		customers := NewCustomerUseCase(repo, uc.opts...)
		for _, row := range rows {
			if row.Err != nil {
				report.Skipped = append(report.Skipped, skip(row, row.Err.Error()))
				continue
			}
			req := row.Request
			if req.UserID.IsZero() {
				req.UserID = userID
			}
			if _, err := customers.Create(ctx, req); err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) {
					report.Skipped = append(report.Skipped, skip(row, joinFields(ve.Fields)))
					continue
				}
				return fmt.Errorf("línea %d (%s): %w", row.Line, req.Code, err)
			}
			report.Imported++
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, fmt.Errorf("importar clientes: %w", err)
	}
	return report, nil
}

func skip(row dto.ImportRow, reason string) dto.ImportSkip {
	return dto.ImportSkip{Line: row.Line, Code: row.Request.Code, Reason: reason}
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return strings.Join(msgs, "; ")
}
