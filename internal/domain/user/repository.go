package user

import "context"

const EntityName = "user"

// Repository creates users. Create returns a common.ConnectionError when no
// connection can be leased and a common.QueryError when the insert fails.
type Repository interface {
	Create(ctx context.Context, u NewUser) (*User, error)
}
