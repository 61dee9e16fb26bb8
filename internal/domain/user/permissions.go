package user

// Permission is a capability bit granted through a role. RatesManage and
// ReservationsManage are reserved for modules that do not exist yet; no
// route is gated on them today.
type Permission uint

const (
	PermissionNone               Permission = 0
	PermissionInventoryManage    Permission = 1 << 0
	PermissionReservationsManage Permission = 1 << 1
	PermissionCheckInOut         Permission = 1 << 2
	PermissionHousekeepingUpdate Permission = 1 << 3
	PermissionRatesManage        Permission = 1 << 4
	PermissionReportingView      Permission = 1 << 5
)

var rolePermissions = map[Role]Permission{
	RoleViewer:   PermissionReportingView,
	RoleOperator: PermissionHousekeepingUpdate | PermissionCheckInOut | PermissionReportingView,
	RoleAdmin: PermissionInventoryManage | PermissionReservationsManage | PermissionCheckInOut |
		PermissionHousekeepingUpdate | PermissionRatesManage | PermissionReportingView,
}

func (r Role) Permissions() Permission {
	return rolePermissions[r]
}

func (r Role) Has(p Permission) bool {
	return rolePermissions[r]&p == p
}
