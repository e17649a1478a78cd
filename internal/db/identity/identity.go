package identity

import (
	"context"
	"errors"
	"fmt"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Table describes where one kind of identity keeps its credentials.
type Table struct {
	Name           string
	IDColumn       string
	EmailColumn    string
	PasswordColumn string
}

var (
	UsersTable = Table{Name: "users", IDColumn: "id_user", EmailColumn: "email", PasswordColumn: "password"}
	AdminTable = Table{Name: "admin", IDColumn: "id_admin", EmailColumn: "email_admin", PasswordColumn: "password"}
)

type PgxRepository struct {
	db   DBTX
	kind identity.Kind

	getByEmailQuery      string
	setPasswordHashQuery string
}

func NewPgxRepository(db DBTX, kind identity.Kind, table Table) *PgxRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	name := pgx.Identifier{table.Name}.Sanitize()
	id := pgx.Identifier{table.IDColumn}.Sanitize()
	email := pgx.Identifier{table.EmailColumn}.Sanitize()
	password := pgx.Identifier{table.PasswordColumn}.Sanitize()

	return &PgxRepository{
		db:   db,
		kind: kind,
		getByEmailQuery: fmt.Sprintf(
			"SELECT %s, %s, %s FROM %s WHERE lower(trim(%s)) = $1 ORDER BY %s LIMIT 1",
			id, email, password, name, email, id,
		),
		setPasswordHashQuery: fmt.Sprintf(
			"UPDATE %s SET %s = $1 WHERE %s = $2",
			name, password, id,
		),
	}
}

func (r *PgxRepository) Kind() identity.Kind {
	return r.kind
}

func (r *PgxRepository) GetByEmail(ctx context.Context, email c.Email) (found identity.Identity, err error) {
	var (
		id           int64
		storedEmail  string
		passwordHash *string
	)
	err = r.db.QueryRow(ctx, r.getByEmailQuery, string(email)).Scan(&id, &storedEmail, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return found, identity.ErrIdentityDoesNotExist
	}
	if err != nil {
		return found, fmt.Errorf("could not query %s identity: %w", r.kind, err)
	}

	found = identity.Identity{
		ID:    identity.ID(id),
		Kind:  r.kind,
		Email: c.NewEmail(storedEmail),
	}
	if passwordHash != nil {
		found.PasswordHash = identity.PasswordHash(*passwordHash)
	}
	return found, found.Validate()
}

func (r *PgxRepository) SetPasswordHash(ctx context.Context, id identity.ID, hash identity.PasswordHash) error {
	tag, err := r.db.Exec(ctx, r.setPasswordHashQuery, string(hash), int64(id))
	if err != nil {
		return fmt.Errorf("could not update %s password: %w", r.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityDoesNotExist
	}
	return nil
}
