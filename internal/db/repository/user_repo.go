package repository

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"

	"userapi/internal/db"
	domcommon "userapi/internal/domain/common"
	dom "userapi/internal/domain/user"
	"userapi/internal/logging"
)

type UserRepository struct {
	client *db.Client
	logger logging.Logger
}

func NewUserRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return &UserRepository{
		client: client,
		logger: logger.With("component", "user_repo"),
	}
}

// Create leases one connection, runs a single INSERT ... RETURNING and hands
// the connection back to the pool whatever the outcome.
func (r *UserRepository) Create(ctx context.Context, u dom.NewUser) (*dom.User, error) {
	conn, err := r.client.Lease(ctx)
	if err != nil {
		return nil, domcommon.NewConnection(err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.logger.Error("failed to release connection", "error", err)
		}
	}()

	query, args := entsql.Dialect(r.client.Dialect()).
		Insert(usersTable).
		Columns(columnName, columnEmail).
		Values(u.Name, u.Email).
		Returning(columnID, columnName, columnEmail).
		Query()

	var row userRow
	if err := conn.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return nil, domcommon.NewQuery(dom.EntityName, err)
	}

	r.logger.Debug("user inserted", "id", row.ID)
	return toDomainUser(row), nil
}
