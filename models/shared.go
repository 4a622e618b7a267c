package models

// UserRole identifies what a user account is allowed to do.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleStudioOwner UserRole = "studio_owner"
	RoleStaff       UserRole = "staff"
	RoleCustomer    UserRole = "customer"
)

// AppointmentStatus tracks an appointment through its lifecycle.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// SessionType is the kind of photo session a package sells.
type SessionType string

const (
	SessionPortrait     SessionType = "portrait"
	SessionFamily       SessionType = "family"
	SessionProfessional SessionType = "professional"
	SessionCreative     SessionType = "creative"
	SessionProduct      SessionType = "product"
	SessionEvent        SessionType = "event"
)

// ValidSessionType reports whether s is one of the known session kinds.
func ValidSessionType(s SessionType) bool {
	switch s {
	case SessionPortrait, SessionFamily, SessionProfessional, SessionCreative, SessionProduct, SessionEvent:
		return true
	}
	return false
}

// EquipmentType categorizes studio equipment.
type EquipmentType string

const (
	EquipmentCamera   EquipmentType = "camera"
	EquipmentLighting EquipmentType = "lighting"
	EquipmentBackdrop EquipmentType = "backdrop"
	EquipmentProps    EquipmentType = "props"
)

// PackageStatus controls whether a package is offered for booking.
type PackageStatus string

const (
	PackageActive   PackageStatus = "active"
	PackageInactive PackageStatus = "inactive"
	PackageDraft    PackageStatus = "draft"
)
