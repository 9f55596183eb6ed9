package dto

// RegisterRequest represents a self-registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo represents the user information returned with a token
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse represents a login/register response
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UpdateProfileRequest represents a profile update for the calling user
type UpdateProfileRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Location         string `json:"location"`
	Designation      string `json:"designation"`
	ExperienceLevel  string `json:"experience_level"`
	Department       string `json:"department"`
	ReportingManager string `json:"reporting_manager"`
	Company          string `json:"company"`
}
