package requests

// UpdateUserProfile is the self-service profile patch. Empty fields keep
// the stored value.
type UpdateUserProfile struct {
	FullName         string `json:"fullName" validate:"omitempty,max=255"`
	Genere           string `json:"genere" validate:"omitempty,max=50"`
	Specializzazione string `json:"specializzazione" validate:"omitempty,max=100"`
}
