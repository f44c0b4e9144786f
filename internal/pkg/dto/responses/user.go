package responses

import (
	"time"

	"medsafe-service/internal/app/models"
)

type User struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Genere           string    `json:"genere,omitempty"`
	Specializzazione string    `json:"specializzazione,omitempty"`
	Role             string    `json:"role"`
	Enabled          bool      `json:"enabled"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewUser(model *models.User) *User {
	return &User{
		ID:               model.ID,
		Email:            model.Email,
		FullName:         model.FullName,
		Genere:           model.Genere,
		Specializzazione: model.Specializzazione,
		Role:             string(model.Role),
		Enabled:          model.Enabled,
		CreatedAt:        model.CreatedAt,
	}
}

func NewUsers(list []models.User) []User {
	result := make([]User, 0, len(list))
	for i := range list {
		result = append(result, *NewUser(&list[i]))
	}
	return result
}
