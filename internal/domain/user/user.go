package user

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Assets describes the hardware issued to a user.
type Assets struct {
	AssetType    string `json:"assetType"`
	SerialNumber string `json:"serialNumber"`
	CPU          string `json:"cpu"`
	RAM          string `json:"ram"`
	NetworkIP    string `json:"networkIp"`
	Monitors     string `json:"monitors"`
	Keyboard     bool   `json:"keyboard"`
	Mouse        bool   `json:"mouse"`
}

type Details struct {
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	AltPhone    string `json:"altPhone"`
	Address     string `json:"address"`
	Assets      Assets `json:"assets"`
}

// User is keyed by Email. Password is kept and returned in plaintext.
type User struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      Role    `json:"role"`
	Locked    bool    `json:"locked"`
	Details   Details `json:"details"`
}

// NewFromCreateRequest builds the stored record for a validated create request.
// Role and lock state are never taken from the caller.
func NewFromCreateRequest(req CreateUserRequest) User {
	return User{
		FirstName: deref(req.FirstName),
		LastName:  deref(req.LastName),
		Email:     deref(req.Email),
		Password:  deref(req.Password),
		Role:      RoleEmployee,
		Locked:    false,
		Details:   *req.Details,
	}
}

// Apply merges a partial update. Nil fields keep the stored value.
func (u User) Apply(req UpdateUserRequest) User {
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Details != nil {
		u.Details = *req.Details
	}

	return u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
