package entity

import (
	"github.com/google/uuid"
)

// StaffRole is the role recorded on a staff grant.
type StaffRole string

const (
	StaffRoleStaff   StaffRole = "staff"
	StaffRoleManager StaffRole = "manager"
	StaffRoleAdmin   StaffRole = "admin"
)

// IsValid checks if the role is a known value.
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleStaff, StaffRoleManager, StaffRoleAdmin:
		return true
	default:
		return false
	}
}

// Capability is a single privileged action a grant may allow.
type Capability string

const (
	CapabilityRegisterCustomers Capability = "can_register_customers"
	CapabilityAddStamps         Capability = "can_add_stamps"
	CapabilityRedeemRewards     Capability = "can_redeem_rewards"
	CapabilityViewCustomerData  Capability = "can_view_customer_data"
)

// CapabilityFlags is the set of boolean capabilities carried by a grant.
type CapabilityFlags struct {
	CanRegisterCustomers bool `json:"can_register_customers"`
	CanAddStamps         bool `json:"can_add_stamps"`
	CanRedeemRewards     bool `json:"can_redeem_rewards"`
	CanViewCustomerData  bool `json:"can_view_customer_data"`
}

// AllCapabilities returns flags with every capability set.
func AllCapabilities() CapabilityFlags {
	return CapabilityFlags{
		CanRegisterCustomers: true,
		CanAddStamps:         true,
		CanRedeemRewards:     true,
		CanViewCustomerData:  true,
	}
}

// Has reports whether the flags include the capability.
func (f CapabilityFlags) Has(capability Capability) bool {
	switch capability {
	case CapabilityRegisterCustomers:
		return f.CanRegisterCustomers
	case CapabilityAddStamps:
		return f.CanAddStamps
	case CapabilityRedeemRewards:
		return f.CanRedeemRewards
	case CapabilityViewCustomerData:
		return f.CanViewCustomerData
	default:
		return false
	}
}

// Any reports whether at least one capability is set.
func (f CapabilityFlags) Any() bool {
	return f.CanRegisterCustomers || f.CanAddStamps || f.CanRedeemRewards || f.CanViewCustomerData
}

// StaffGrant associates a user with a location, or with a whole tenant when LocationID is nil.
type StaffGrant struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user_id"`
	TenantID   uuid.UUID    `json:"tenant_id"`
	LocationID *uuid.UUID   `json:"location_id,omitempty"`
	Role       StaffRole    `json:"role"`
	Status     RecordStatus `json:"status"`
	CapabilityFlags
}

// IsTenantAdmin reports whether the grant is a tenant-level admin grant.
func (g *StaffGrant) IsTenantAdmin() bool {
	return g.LocationID == nil && g.Role == StaffRoleAdmin
}

// PermissionKind tags the variant of a resolved permission set.
type PermissionKind string

const (
	PermissionDenied        PermissionKind = "denied"
	PermissionLocationGrant PermissionKind = "location_grant"
	PermissionTenantAdmin   PermissionKind = "tenant_admin"
)

// PermissionSet is what an actor may do at a location or across a tenant.
type PermissionSet struct {
	Kind       PermissionKind
	TenantID   uuid.UUID
	LocationID uuid.UUID
	Role       StaffRole
	Flags      CapabilityFlags
}

// DeniedPermission is the permission set of an actor with no usable grant.
func DeniedPermission() PermissionSet {
	return PermissionSet{Kind: PermissionDenied}
}

// IsDenied reports whether the actor holds nothing.
func (p PermissionSet) IsDenied() bool {
	return p.Kind == PermissionDenied || p.Kind == ""
}

// IsTenantAdmin reports whether the set came from a tenant-level admin grant.
func (p PermissionSet) IsTenantAdmin() bool {
	return p.Kind == PermissionTenantAdmin
}

// Can reports whether the set allows the capability.
func (p PermissionSet) Can(capability Capability) bool {
	if p.IsDenied() {
		return false
	}

	return p.Flags.Has(capability)
}
