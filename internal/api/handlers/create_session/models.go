package create_session

// CreateSessionRequest имя и организация пользователя
type CreateSessionRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Org  string `json:"org" validate:"required,min=2,max=100"`
}

// ProfileResponse HTTP response model
type ProfileResponse struct {
	Name string `json:"name"`
	Org  string `json:"org"`
}
