package dto

// ImportRow fila de una planilla de importación. Err indica un problema de formato detectado
// al leerla; la fila se descarta.
type ImportRow struct {
	Line    int
	Request CreateCustomerRequest
	Err     error
}

// ImportSkip fila descartada y el motivo.
type ImportSkip struct {
	Line   int
	Code   string
	Reason string
}

// ImportReport resultado de una importación.
type ImportReport struct {
	Imported int
	Skipped  []ImportSkip
	DryRun   bool
}
