package dto

// LoginResponse is returned after a successful basic-auth login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
