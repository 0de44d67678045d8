package authdto

// LoginInput dùng cho POST /auth/login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateCredentialsInput dùng cho POST /auth/update
type UpdateCredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
