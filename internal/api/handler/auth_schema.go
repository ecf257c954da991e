package handler

// --- Request / Response types ---

type signinRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=40"`
}

// jwtResponse is returned on successful signin: the bearer token plus the
// identity's public profile.
type jwtResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// messageResponse is the body for signup and signout outcomes. Signup
// conflicts carry a message prefixed with "Error:" so callers can tell
// failure from success by content.
type messageResponse struct {
	Message string `json:"message"`
}
