package dto

type UserOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
