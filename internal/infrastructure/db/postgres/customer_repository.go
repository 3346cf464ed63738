package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

const customerColumns = "id, name, company_name, department, industry, contact_name, deal_size, phone, address, created_at, updated_at"

// CustomerRepository persists customer master data.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) List(ctx context.Context, f ports.CustomerFilter) ([]domain.Customer, int, error) {
	where, args := customerWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers` + where +
		` ORDER BY created_at ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		cu, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, *cu)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	return customers, total, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	cu, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return cu, nil
}

func (r *CustomerRepository) Create(ctx context.Context, cu *domain.Customer) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO customers (name, company_name, department, industry, contact_name, deal_size, phone, address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		cu.Name, cu.CompanyName, cu.Department, cu.Industry, cu.ContactName, cu.DealSize, cu.Phone, cu.Address,
	).Scan(&cu.ID, &cu.CreatedAt, &cu.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, cu *domain.Customer) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE customers
		 SET name = $2, company_name = $3, department = $4, industry = $5,
		     contact_name = $6, deal_size = $7, phone = $8, address = $9, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		cu.ID, cu.Name, cu.CompanyName, cu.Department, cu.Industry, cu.ContactName, cu.DealSize, cu.Phone, cu.Address,
	).Scan(&cu.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func customerWhere(f ports.CustomerFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+escapeLike(f.Query)+"%")
		n := strconv.Itoa(len(args))
		conds = append(conds, "(name ILIKE $"+n+" OR company_name ILIKE $"+n+")")
	}
	if f.Industry != "" {
		args = append(args, f.Industry)
		conds = append(conds, "industry = $"+strconv.Itoa(len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var cu domain.Customer
	err := row.Scan(
		&cu.ID,
		&cu.Name,
		&cu.CompanyName,
		&cu.Department,
		&cu.Industry,
		&cu.ContactName,
		&cu.DealSize,
		&cu.Phone,
		&cu.Address,
		&cu.CreatedAt,
		&cu.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cu, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes ILIKE wildcards so the search term matches
// literally. Postgres treats backslash as the default escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
