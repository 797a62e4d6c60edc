package models

// LoginRequest учетные данные администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse ответ на успешный вход
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer тип токена в ответе
const TokenTypeBearer = "bearer"
