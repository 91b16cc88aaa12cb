// Package policy holds the access rules for every table. The same rule table renders the
// PostgreSQL row-level security policies and drives the in-process Enforcer.
package policy

type Action string

const (
	Select Action = "select"
	Insert Action = "insert"
	Update Action = "update"
	Delete Action = "delete"
)

var Actions = []Action{Select, Insert, Update, Delete}

type Check int

const (
	// Anyone allows any authenticated identity.
	Anyone Check = iota
	// OwnerOrAdmin allows the row owner or an admin.
	OwnerOrAdmin
	// AdminOnly allows admins only.
	AdminOnly
	// ServiceOnly allows server-internal operations only.
	ServiceOnly
)

func (c Check) String() string {
	switch c {
	case Anyone:
		return "anyone"
	case OwnerOrAdmin:
		return "owner_or_admin"
	case AdminOnly:
		return "admin_only"
	default:
		return "service_only"
	}
}

type TableRule struct {
	Table       string
	OwnerColumn string
	Checks      map[Action]Check
}

// CheckFor returns the check for action. Actions without a rule are service-only.
func (r TableRule) CheckFor(a Action) Check {
	c, ok := r.Checks[a]
	if !ok {
		return ServiceOnly
	}
	return c
}

func ownerWrites(table, owner string) TableRule {
	return TableRule{
		Table:       table,
		OwnerColumn: owner,
		Checks: map[Action]Check{
			Select: Anyone,
			Insert: OwnerOrAdmin,
			Update: OwnerOrAdmin,
			Delete: OwnerOrAdmin,
		},
	}
}

func adminTable(table string) TableRule {
	return TableRule{
		Table:       table,
		OwnerColumn: "created_by",
		Checks: map[Action]Check{
			Select: AdminOnly,
			Insert: AdminOnly,
			Update: AdminOnly,
			Delete: AdminOnly,
		},
	}
}

var Rules = []TableRule{
	ownerWrites("projects", "created_by"),
	ownerWrites("tasks", "created_by"),
	ownerWrites("notes", "created_by"),
	adminTable("finance_records"),
	adminTable("payments"),
	{
		Table:       "profiles",
		OwnerColumn: "id",
		Checks: map[Action]Check{
			Select: Anyone,
			Insert: OwnerOrAdmin,
			Update: OwnerOrAdmin,
			Delete: AdminOnly,
		},
	},
	{
		Table:       "user_roles",
		OwnerColumn: "user_id",
		Checks: map[Action]Check{
			Select: Anyone,
			Insert: AdminOnly,
			Update: AdminOnly,
			Delete: AdminOnly,
		},
	},
	{Table: "auth_users", OwnerColumn: "id"},
	{Table: "password_reset_tokens", OwnerColumn: "user_id"},
}

func Lookup(table string) (TableRule, bool) {
	for _, r := range Rules {
		if r.Table == table {
			return r, true
		}
	}
	return TableRule{}, false
}
