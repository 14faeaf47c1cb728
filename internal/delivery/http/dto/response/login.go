package response

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          UserResponse `json:"user"`
}
