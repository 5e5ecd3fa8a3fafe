package user

// Pointer fields distinguish an absent key from an empty value. Presence is
// the only rule enforced on create.
type CreateUserRequest struct {
	FirstName *string  `json:"firstName" binding:"required"`
	LastName  *string  `json:"lastName" binding:"required"`
	Email     *string  `json:"email" binding:"required"`
	Password  *string  `json:"password" binding:"required"`
	Details   *Details `json:"details" binding:"required"`
}

// Email, password, role and locked cannot be changed through an update.
type UpdateUserRequest struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Details   *Details `json:"details"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
