// Package csvimport lee planillas de clientes separadas por ';' (formato habitual de Excel en
// pt-BR) y las convierte en solicitudes de alta.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

// Encoding codificación del archivo.
type Encoding string

const (
	EncodingAuto        Encoding = "auto" // UTF-8 si el contenido es válido, si no Windows-1252
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
)

// ParseEncoding interpreta el nombre recibido por flag.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252", "latin1", "iso-8859-1":
		return EncodingWindows1252, nil
	}
	return "", fmt.Errorf("codificación no soportada: %q", s)
}

// ErrMissingColumn la cabecera no trae una columna obligatoria.
var ErrMissingColumn = errors.New("columna obligatoria ausente")

// columnAliases cabeceras aceptadas (claves JSON o etiquetas en portugués).
var columnAliases = map[string]string{
	"code": "code", "codigo": "code", "código": "code",
	"name": "name", "nome": "name",
	"taxid": "taxId", "cpf/cnpj": "taxId", "cpf_cnpj": "taxId", "cnpj": "taxId", "cpf": "taxId",
	"postalcode": "postalCode", "cep": "postalCode",
	"street": "street", "logradouro": "street",
	"address": "address", "endereco": "address", "endereço": "address",
	"number": "number", "numero": "number", "número": "number",
	"neighborhood": "neighborhood", "bairro": "neighborhood",
	"city": "city", "cidade": "city",
	"state": "state", "uf": "state",
	"complement": "complement", "complemento": "complement",
	"phone": "phone", "telefone": "phone", "fone": "phone",
	"creditlimit": "creditLimit", "limite": "creditLimit", "limite de crédito": "creditLimit", "limite de credito": "creditLimit",
	"expiresat": "expiresAt", "validade": "expiresAt",
}

var requiredColumns = []string{"code", "name", "taxId", "postalCode", "phone", "creditLimit", "expiresAt"}

// Read decodifica el archivo completo. Errores de cabecera o de CSV abortan; los de una fila
// quedan en ImportRow.Err y el resto del archivo sigue.
func Read(r io.Reader, enc Encoding) ([]dto.ImportRow, error) {
	decoded, err := decode(r, enc)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []dto.ImportRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(record) {
			continue
		}
		rows = append(rows, toRow(line, record, index))
	}
	return rows, nil
}

func decode(r io.Reader, enc Encoding) (io.Reader, error) {
	switch enc {
	case EncodingUTF8:
		return stripBOM(r)
	case EncodingWindows1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if utf8.Valid(raw) {
		return bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)), nil
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder()), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripBOM(r io.Reader) (io.Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)), nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if key, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			index[key] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func toRow(line int, record []string, index map[string]int) dto.ImportRow {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	req := dto.CreateCustomerRequest{
		Code:         get("code"),
		Name:         get("name"),
		TaxID:        get("taxId"),
		PostalCode:   dto.PostalCodeInput(get("postalCode")),
		Street:       get("street"),
		Address:      get("address"),
		Number:       get("number"),
		Neighborhood: get("neighborhood"),
		City:         get("city"),
		State:        get("state"),
		Phone:        get("phone"),
		ExpiresAt:    get("expiresAt"),
	}
	if c := get("complement"); c != "" {
		req.Complement = &c
	}
	row := dto.ImportRow{Line: line, Request: req}

	// Excel guarda el CEP como número y pierde el cero inicial (01310930 -> 1310930).
	if d := brdoc.Digits(string(req.PostalCode)); len(d) == brdoc.PostalCodeDigits-1 {
		row.Request.PostalCode = dto.PostalCodeInput("0" + d)
	}

	if raw := get("creditLimit"); raw != "" {
		limit, err := brdoc.ParseAmount(raw)
		if err != nil {
			row.Err = fmt.Errorf("línea %d: limite de crédito %q: %w", line, raw, err)
			return row
		}
		row.Request.CreditLimit = &limit
	}

	if exp, ok := brazilianDate(req.ExpiresAt); ok {
		row.Request.ExpiresAt = exp
	}
	return row
}

// brazilianDate convierte "31/12/2026" a "2026-12-31".
func brazilianDate(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return "", false
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0], true
}
