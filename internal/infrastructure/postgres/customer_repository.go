package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, user_id, created_at, code, name, tax_id, postal_code, street, address,
	number, neighborhood, city, state, complement, phone, credit_limit, expires_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create inserta el cliente; la base asigna id y created_at.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (user_id, code, name, tax_id, postal_code, street, address, number,
			neighborhood, city, state, complement, phone, credit_limit, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`
	var id int64
	err := r.q.QueryRow(ctx, query,
		int64(c.UserID), c.Code, c.Name, c.TaxID, int32(c.PostalCode), c.Street, c.Address, c.Number,
		c.Neighborhood, c.City, c.State, c.Complement, c.Phone, c.CreditLimit, c.ExpiresAt,
	).Scan(&id, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = entity.ID(id)
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, int64(id))
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List filtra (ILIKE para texto, CEP como substring de los 8 dígitos) y pagina por created_at desc.
func (r *CustomerRepo) List(ctx context.Context, filter entity.CustomerFilter, limit, offset int) ([]*entity.Customer, int, error) {
	where, args := customerWhere(filter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM customers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	n := len(args)
	query := `SELECT ` + customerColumns + ` FROM customers` + where +
		` ORDER BY created_at DESC, id DESC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	rows, err := r.q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Customer, 0, limit)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return list, total, nil
}

// Update reescribe los campos mutables (id y created_at no cambian).
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET user_id = $2, code = $3, name = $4, tax_id = $5, postal_code = $6,
			street = $7, address = $8, number = $9, neighborhood = $10, city = $11, state = $12,
			complement = $13, phone = $14, credit_limit = $15, expires_at = $16
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		int64(c.ID), int64(c.UserID), c.Code, c.Name, c.TaxID, int32(c.PostalCode), c.Street, c.Address,
		c.Number, c.Neighborhood, c.City, c.State, c.Complement, c.Phone, c.CreditLimit, c.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id entity.ID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// customerWhere arma la cláusula WHERE (con espacio inicial) y sus argumentos.
func customerWhere(f entity.CustomerFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(expr, value string) {
		args = append(args, containsPattern(value))
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}
	if f.Code != "" {
		add("code ILIKE $%d", f.Code)
	}
	if f.Name != "" {
		add("name ILIKE $%d", f.Name)
	}
	if f.City != "" {
		add("city ILIKE $%d", f.City)
	}
	if f.PostalCode != "" {
		if digits := brdoc.Digits(f.PostalCode); digits != "" {
			add("lpad(postal_code::text, 8, '0') LIKE $%d", digits)
		} else {
			conds = append(conds, "FALSE")
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c          entity.Customer
		id, userID int64
		postalCode int32
	)
	err := row.Scan(&id, &userID, &c.CreatedAt, &c.Code, &c.Name, &c.TaxID, &postalCode, &c.Street,
		&c.Address, &c.Number, &c.Neighborhood, &c.City, &c.State, &c.Complement, &c.Phone,
		&c.CreditLimit, &c.ExpiresAt)
	if err != nil {
		return nil, err
	}
	c.ID = entity.ID(id)
	c.UserID = entity.ID(userID)
	c.PostalCode = entity.PostalCode(postalCode)
	return &c, nil
}
