package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"donationrecords/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const donationColumns = `id, donor_name, donor_cpf, amount, donated_at, donor_email, created_at, updated_at`

// pq error code for CHECK constraint violations (e.g. amount > 0).
const pqCheckViolation = "23514"

// constraintErrors maps each CHECK constraint of the donations table to the input field and message a client sees.
var constraintErrors = map[string]struct{ field, message string }{
	"donations_amount_positive": {field: "amount", message: "donation amount must be greater than 0.00"},
}

type donationRepository struct {
	DB *sql.DB
}

// NewDonationRepository returns a domain.DonationRepository implemented with Postgres.
func NewDonationRepository(db *sql.DB) domain.DonationRepository {
	return &donationRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonation(s rowScanner) (*domain.Donation, error) {
	d := &domain.Donation{}
	var emailNull sql.NullString
	var updatedNull sql.NullTime
	if err := s.Scan(&d.ID, &d.DonorName, &d.DonorCPF, &d.Amount, &d.DonatedAt, &emailNull, &d.CreatedAt, &updatedNull); err != nil {
		return nil, err
	}
	if emailNull.Valid {
		d.DonorEmail = &emailNull.String
	}
	if updatedNull.Valid {
		d.UpdatedAt = &updatedNull.Time
	}
	return d, nil
}

func (r *donationRepository) queryDonations(ctx context.Context, query string, args ...any) ([]*domain.Donation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	donations := make([]*domain.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *donationRepository) Save(ctx context.Context, d *domain.Donation) error {
	if d.ID == 0 {
		return r.insert(ctx, d)
	}
	return r.update(ctx, d)
}

func (r *donationRepository) insert(ctx context.Context, d *domain.Donation) error {
	query := `
		INSERT INTO donations (donor_name, donor_cpf, amount, donated_at, donor_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, donated_at
	`
	// Timestamps come back as stored so the caller sees the same values a later read returns.
	err := r.DB.QueryRowContext(ctx, query, d.DonorName, d.DonorCPF, d.Amount, d.DonatedAt, d.DonorEmail, d.CreatedAt).
		Scan(&d.ID, &d.CreatedAt, &d.DonatedAt)
	return mapWriteError(err)
}

func (r *donationRepository) update(ctx context.Context, d *domain.Donation) error {
	query := `
		UPDATE donations
		SET donor_name = $2, donor_cpf = $3, amount = $4, donated_at = $5, donor_email = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	var updatedAt time.Time
	err := r.DB.QueryRowContext(ctx, query, d.ID, d.DonorName, d.DonorCPF, d.Amount, d.DonatedAt, d.DonorEmail).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return mapWriteError(err)
	}
	d.UpdatedAt = &updatedAt
	return nil
}

// mapWriteError turns constraint violations into validation errors so they surface as 400s.
func mapWriteError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == pqCheckViolation {
		if ce, ok := constraintErrors[perr.Constraint]; ok {
			return domain.NewValidationError(ce.field, ce.message)
		}
		return domain.NewValidationError(perr.Column, "value violates a donation rule")
	}
	return err
}

func (r *donationRepository) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	d, err := scanDonation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func orderBy(s domain.DonationSort) string {
	switch s {
	case domain.SortDonatedAtAsc:
		return "donated_at ASC, id ASC"
	case domain.SortIDAsc:
		return "id ASC"
	default:
		return "donated_at DESC, id DESC"
	}
}

func (r *donationRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations ORDER BY ` + orderBy(opts.Sort)
	var args []any
	if opts.Pagination.Limited() {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, opts.Pagination.PageSize, opts.Pagination.Offset())
	}
	return r.queryDonations(ctx, query, args...)
}

func (r *donationRepository) ListByCPF(ctx context.Context, cpf string) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donor_cpf = $1 ORDER BY donated_at DESC, id DESC`
	return r.queryDonations(ctx, query, cpf)
}

// likeEscaper escapes LIKE wildcards so the fragment is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *donationRepository) ListByNameContains(ctx context.Context, fragment string) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donor_name ILIKE $1 ESCAPE '\' ORDER BY donated_at DESC, id DESC`
	return r.queryDonations(ctx, query, "%"+likeEscaper.Replace(fragment)+"%")
}

func (r *donationRepository) ListByMinAmount(ctx context.Context, min decimal.Decimal) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE amount >= $1 ORDER BY amount DESC, id DESC`
	return r.queryDonations(ctx, query, min)
}

func (r *donationRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donated_at BETWEEN $1 AND $2 ORDER BY donated_at DESC, id DESC`
	return r.queryDonations(ctx, query, from, to)
}

func (r *donationRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM donations WHERE donor_cpf = $1)`, cpf).Scan(&exists)
	return exists, err
}

func (r *donationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *donationRepository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *donationRepository) SumAmountByCPF(ctx context.Context, cpf string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE donor_cpf = $1`, cpf).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
