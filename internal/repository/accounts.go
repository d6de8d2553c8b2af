package repository

import (
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/domain"
)

func (r *Repository) GetAccount(username string) (*domain.Account, error) {
	query := `
		SELECT id, password_hash, name, phone, home, email, roles, is_logged_in, created_at, version
		FROM accounts WHERE username = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	account := &domain.Account{
		Username: username,
	}

	dst := []any{&account.ID, &account.PasswordHash, &account.Name, &account.Phone, &account.Home, &account.Email, &account.Roles, &account.IsLoggedIn, &account.CreatedAt, &account.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, mapError(err)
	}

	return account, nil
}

func (r *Repository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, name, phone, home, email, roles)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_logged_in, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{account.Username, account.PasswordHash, account.Name, account.Phone, account.Home, account.Email, account.Roles}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.IsLoggedIn, &account.CreatedAt, &account.Version); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) UpdateAccount(account *domain.Account) error {
	query := `
		UPDATE accounts
		SET
			password_hash = $1,
			name = $2,
			phone = $3,
			home = $4,
			email = $5,
			roles = $6,
			is_logged_in = $7,
			version = version + 1
		WHERE username = $8 AND version = $9
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{account.PasswordHash, account.Name, account.Phone, account.Home, account.Email, account.Roles, account.IsLoggedIn, account.Username, account.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&account.Version); err != nil {
		return mapError(err)
	}

	return nil
}

func (r *Repository) DeleteAccount(username string) error {
	// instructor and lab TA references carry ON DELETE SET NULL and
	// course_tas rows ON DELETE CASCADE, so assignments go dangling-free
	query := `
		DELETE FROM accounts WHERE username = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, username)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) ListAccounts() ([]*domain.Account, error) {
	query := `
		SELECT id, username, password_hash, name, phone, home, email, roles, is_logged_in, created_at, version
		FROM accounts ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		dst := []any{&account.ID, &account.Username, &account.PasswordHash, &account.Name, &account.Phone, &account.Home, &account.Email, &account.Roles, &account.IsLoggedIn, &account.CreatedAt, &account.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
