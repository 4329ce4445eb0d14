package dto

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@campus.edu"`
	Password string `json:"password" binding:"required,min=8" example:"changeme123"`
}

// RegisterRequest is the user registration payload (admin only)
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"staff@campus.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"changeme123"`
	FirstName string `json:"firstName" binding:"required" example:"John"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Role      string `json:"role" binding:"required,oneof=ADMIN STAFF" example:"STAFF"`
}

// RefreshTokenRequest is the token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}
