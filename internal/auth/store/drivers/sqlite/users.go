package sqlite

import (
	"context"

	"github.com/covercell/covercell/internal/auth/domain"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, first_name, last_name, email, password_hash, phone,
	address, city, state, zip_code, phone_brand, phone_model, purchase_date,
	phone_value, plan, role, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, phone,
			address, city, state, zip_code, phone_brand, phone_model,
			purchase_date, phone_value, plan, role
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Phone,
		u.Address, u.City, u.State, u.ZipCode, u.PhoneBrand, u.PhoneModel,
		u.PurchaseDate, u.PhoneValue, u.Plan, string(u.Role),
	)
	if err != nil {
		return mapConflict(err)
	}

	// Image refs keep their submission order via the position column.
	for i, ref := range u.Images {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO user_images (user_id, position, ref)
			VALUES (?, ?, ?)`,
			u.ID, i, ref,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(ctx, row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(ctx, row)
}

func (r *usersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM users`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *usersRepo) scanUser(ctx context.Context, row rowScanner) (domain.User, error) {
	var u domain.User
	var role string

	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone,
		&u.Address, &u.City, &u.State, &u.ZipCode, &u.PhoneBrand, &u.PhoneModel,
		&u.PurchaseDate, &u.PhoneValue, &u.Plan, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)

	images, err := r.listImages(ctx, u.ID)
	if err != nil {
		return domain.User{}, err
	}
	u.Images = images

	return u, nil
}

func (r *usersRepo) listImages(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT ref FROM user_images
		WHERE user_id = ?
		ORDER BY position`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
