package user

import (
	dom "userapi/internal/domain/user"
)

// UserDto is the JSON shape returned to callers and published in events.
type UserDto struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserInput struct {
	Name  string
	Email string
}

func toDTO(u *dom.User) *UserDto {
	if u == nil {
		return nil
	}
	return &UserDto{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
