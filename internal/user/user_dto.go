package user

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type ForceResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpsertSecurityProfileRequest struct {
	BadgeNumber    string `json:"badge_number" binding:"required"`
	Department     string `json:"department"`
	ClearanceLevel string `json:"clearance_level" binding:"omitempty,oneof=basic intermediate advanced"`
	IsOnDuty       bool   `json:"is_on_duty"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

type SecurityProfileResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	BadgeNumber    string `json:"badge_number"`
	Department     string `json:"department,omitempty"`
	ClearanceLevel string `json:"clearance_level"`
	IsOnDuty       bool   `json:"is_on_duty"`
}
