package repository

import (
	dom "userapi/internal/domain/user"
)

const (
	usersTable  = "users"
	columnID    = "id"
	columnName  = "name"
	columnEmail = "email"
)

type userRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func toDomainUser(r userRow) *dom.User {
	return &dom.User{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}
