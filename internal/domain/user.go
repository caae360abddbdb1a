package domain

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
	RoleCustomer   Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID                 int32  `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	PasswordHash       string `json:"-"`
	Role               Role   `json:"role"`
	IsSuperuser        bool   `json:"-"`
	IsStaff            bool   `json:"-"`
	Phone              string `json:"phone"`
	Country            string `json:"country"`
	City               string `json:"city"`
	Address            string `json:"address"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
	Timezone           string `json:"timezone"`
	CreatedOn          string `json:"created_on"`
	UpdatedOn          string `json:"updated_on"`
}

// EffectiveRole derives the acting role from the stored base role plus the
// privilege flags. The base role is never rewritten on save; superuser and
// staff flags escalate it at read time instead.
func (u *User) EffectiveRole() Role {
	if u.IsSuperuser {
		return RoleSuperAdmin
	}
	if u.IsStaff && u.Role == RoleCustomer {
		return RoleEmployee
	}
	return u.Role
}

func (u *User) IsCustomer() bool {
	return u.EffectiveRole() == RoleCustomer
}

// IsEmployee reports whether the user holds at least employee privileges.
func (u *User) IsEmployee() bool {
	switch u.EffectiveRole() {
	case RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the user holds at least admin privileges.
func (u *User) IsAdmin() bool {
	switch u.EffectiveRole() {
	case RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (u *User) IsSuperAdmin() bool {
	return u.EffectiveRole() == RoleSuperAdmin
}
