package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Lifecycle actions
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage:   {},
	ActionComplete: {}, ActionCancel: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Marketplace catalog
	ResourceTutorProfile Resource = "tutor_profile"
	ResourceCategory     Resource = "category"

	// Scheduling
	ResourceAvailabilitySlot Resource = "availability_slot"
	ResourceBooking          Resource = "booking"

	// Feedback
	ResourceReview Resource = "review"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceTutorProfile: {}, ResourceCategory: {},
	ResourceAvailabilitySlot: {}, ResourceBooking: {},
	ResourceReview: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Marketplace roles (domain = app)
	RoleAdmin   Role = "role:admin"
	RoleTutor   Role = "role:tutor"
	RoleStudent Role = "role:student"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleAdmin:              {},
	RoleTutor:              {},
	RoleStudent:            {},
	RoleUserSelf:           {},
}

// Account role strings (stored in DB users.role column)
const (
	AccountRoleStudent = "student"
	AccountRoleTutor   = "tutor"
	AccountRoleAdmin   = "admin"
)

// AccountRoleToRBACRole maps DB role values to Casbin roles
var AccountRoleToRBACRole = map[string]Role{
	AccountRoleStudent: RoleStudent,
	AccountRoleTutor:   RoleTutor,
	AccountRoleAdmin:   RoleAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
	DomainApp Domain = "app"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the private per-user domain (typed, safe).
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainApp || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
