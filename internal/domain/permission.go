package domain

// Role names as stored in the roles table
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
)

// Permission is a typed capability. Checks go through PermissionSet so a
// misspelled permission fails to compile instead of silently denying.
type Permission string

const (
	PermCompaniesManage     Permission = "companies:manage"
	PermJobsManage          Permission = "jobs:manage"
	PermApplicationsApply   Permission = "applications:apply"
	PermApplicationsReview  Permission = "applications:review"
	PermProfileManage       Permission = "profile:manage"
	PermDocumentsManage     Permission = "documents:manage"
	PermNotificationsRead   Permission = "notifications:read"
	PermUsersManage         Permission = "users:manage"
)

// rolePermissions maps each role to its capabilities. The mapping lives
// server-side; tokens carry role names only.
var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		PermCompaniesManage, PermJobsManage, PermApplicationsApply,
		PermApplicationsReview, PermProfileManage, PermDocumentsManage,
		PermNotificationsRead, PermUsersManage,
	},
	RoleEmployer: {
		PermCompaniesManage, PermJobsManage, PermApplicationsReview,
		PermDocumentsManage, PermNotificationsRead,
	},
	RoleJobSeeker: {
		PermApplicationsApply, PermProfileManage, PermDocumentsManage,
		PermNotificationsRead,
	},
}

// PermissionSet is a capability set resolved from a user's roles.
type PermissionSet map[Permission]struct{}

// PermissionsForRoles resolves role names into a capability set.
// Unknown role names contribute nothing.
func PermissionsForRoles(roles []string) PermissionSet {
	set := make(PermissionSet)
	for _, role := range roles {
		for _, p := range rolePermissions[role] {
			set[p] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the permission.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// HasAny reports whether the set contains at least one of the permissions.
func (s PermissionSet) HasAny(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}
