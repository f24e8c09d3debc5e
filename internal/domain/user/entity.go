package user

// User is a persisted row. ID is assigned by the database.
type User struct {
	ID    int64
	Name  string
	Email string
}

// NewUser carries the fields of a row that has not been inserted yet.
type NewUser struct {
	Name  string
	Email string
}
