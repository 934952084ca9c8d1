package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAlumni  RoleType = "alumni"
	RoleParent  RoleType = "parent"
	RoleDonor   RoleType = "donor"
	RoleMentor  RoleType = "mentor"
	RoleTeacher RoleType = "teacher"
	RoleStaff   RoleType = "staff"
	RoleAdmin   RoleType = "admin"
	// RoleMEO is the Mandal Educational Officer.
	RoleMEO RoleType = "meo"
)

// SelfRegisterRoles are the roles a visitor may pick when signing up.
// Administrative roles are provisioned by the seeder.
var SelfRegisterRoles = []RoleType{RoleStudent, RoleAlumni, RoleParent, RoleDonor, RoleMentor, RoleTeacher}

// IsStaff reports whether the role may use the administrative views.
func (r RoleType) IsStaff() bool {
	return r == RoleAdmin || r == RoleMEO
}

// PaymentStatus of a donation.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// NeedStatus of a school need.
type NeedStatus string

const (
	NeedActive    NeedStatus = "active"
	NeedFulfilled NeedStatus = "fulfilled"
	NeedClosed    NeedStatus = "closed"
)
