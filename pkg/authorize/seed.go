package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Marketplace policies (domain: app)
	appPolicies := []PermissionPolicy{
		// Admin: manage catalog, users, bookings and reviews
		{RoleAdmin, DomainApp, ResourceUser, ActionManage, EffectAllow},
		{RoleAdmin, DomainApp, ResourceCategory, ActionManage, EffectAllow},
		{RoleAdmin, DomainApp, ResourceTutorProfile, ActionManage, EffectAllow},
		{RoleAdmin, DomainApp, ResourceBooking, ActionManage, EffectAllow},
		{RoleAdmin, DomainApp, ResourceReview, ActionManage, EffectAllow},
		{RoleAdmin, DomainApp, ResourceAudit, ActionRead, EffectAllow},

		// Tutor: own profile, own slots, complete own bookings
		{RoleTutor, DomainApp, ResourceTutorProfile, ActionCreate, EffectAllow},
		{RoleTutor, DomainApp, ResourceTutorProfile, ActionUpdate, EffectAllow},
		{RoleTutor, DomainApp, ResourceTutorProfile, ActionRead, EffectAllow},
		{RoleTutor, DomainApp, ResourceAvailabilitySlot, ActionManage, EffectAllow},
		{RoleTutor, DomainApp, ResourceBooking, ActionRead, EffectAllow},
		{RoleTutor, DomainApp, ResourceBooking, ActionList, EffectAllow},
		{RoleTutor, DomainApp, ResourceBooking, ActionComplete, EffectAllow},
		{RoleTutor, DomainApp, ResourceReview, ActionRead, EffectAllow},
		{RoleTutor, DomainApp, ResourceReview, ActionList, EffectAllow},

		// Student: book slots, cancel own bookings, write reviews
		{RoleStudent, DomainApp, ResourceBooking, ActionCreate, EffectAllow},
		{RoleStudent, DomainApp, ResourceBooking, ActionRead, EffectAllow},
		{RoleStudent, DomainApp, ResourceBooking, ActionList, EffectAllow},
		{RoleStudent, DomainApp, ResourceBooking, ActionCancel, EffectAllow},
		{RoleStudent, DomainApp, ResourceReview, ActionCreate, EffectAllow},
		{RoleStudent, DomainApp, ResourceReview, ActionRead, EffectAllow},
		{RoleStudent, DomainApp, ResourceReview, ActionList, EffectAllow},
		{RoleStudent, DomainApp, ResourceReview, ActionUpdate, EffectAllow},
		{RoleStudent, DomainApp, ResourceReview, ActionDelete, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, appPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignAccountRole assigns the marketplace role matching the account's role column.
// Call this when registering a new user or when an admin changes a user's role.
func AssignAccountRole(ctx context.Context, auth IAuthorization, userID string, accountRole string) error {
	role, ok := AccountRoleToRBACRole[accountRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainApp)
	return err
}

// RemoveAccountRole removes a marketplace role from a user.
func RemoveAccountRole(ctx context.Context, auth IAuthorization, userID string, accountRole string) error {
	role, ok := AccountRoleToRBACRole[accountRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainApp)
	return err
}

// GetAppRoles returns all marketplace roles a user has.
func GetAppRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainApp)
}

// AssignSuperAdminRole assigns the platform superadmin role.
// Should be assigned manually/carefully, typically via the system init command.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
