package policy

import (
	"fmt"
	"strings"
)

// FunctionStatements creates the SQL helpers the policies are written against.
// app.current_user_id and app.service_role are transaction-local settings written
// by the data layer before each query.
func FunctionStatements() []string {
	return []string{
		`CREATE OR REPLACE FUNCTION app_uid() RETURNS uuid
LANGUAGE sql STABLE
AS $$ SELECT nullif(current_setting('app.current_user_id', true), '')::uuid $$`,
		`CREATE OR REPLACE FUNCTION app_is_service() RETURNS boolean
LANGUAGE sql STABLE
AS $$ SELECT coalesce(current_setting('app.service_role', true), '') = 'on' $$`,
		`CREATE OR REPLACE FUNCTION has_role(_user_id uuid, _role app_role) RETURNS boolean
LANGUAGE sql STABLE SECURITY DEFINER
SET search_path = public
AS $$ SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = _user_id AND role = _role) $$`,
	}
}

// Predicate renders the SQL condition for check against a table whose owner is ownerCol.
func Predicate(c Check, ownerCol string) string {
	switch c {
	case Anyone:
		return "app_is_service() OR app_uid() IS NOT NULL"
	case OwnerOrAdmin:
		return fmt.Sprintf("app_is_service() OR %s = app_uid() OR has_role(app_uid(), 'admin')", ownerCol)
	case AdminOnly:
		return "app_is_service() OR has_role(app_uid(), 'admin')"
	default:
		return "app_is_service()"
	}
}

func policyName(table string, a Action) string {
	return fmt.Sprintf("%s_%s", table, a)
}

// Statements renders idempotent RLS statements for every rule.
func Statements(rules []TableRule) []string {
	var out []string
	for _, r := range rules {
		out = append(out,
			fmt.Sprintf("ALTER TABLE %s ENABLE ROW LEVEL SECURITY", r.Table),
			fmt.Sprintf("ALTER TABLE %s FORCE ROW LEVEL SECURITY", r.Table),
		)
		for _, a := range Actions {
			pred := Predicate(r.CheckFor(a), r.OwnerColumn)
			name := policyName(r.Table, a)

			var clause string
			switch a {
			case Insert:
				clause = fmt.Sprintf("WITH CHECK (%s)", pred)
			case Update:
				clause = fmt.Sprintf("USING (%s) WITH CHECK (%s)", pred, pred)
			default:
				clause = fmt.Sprintf("USING (%s)", pred)
			}

			out = append(out,
				fmt.Sprintf("DROP POLICY IF EXISTS %s ON %s", name, r.Table),
				fmt.Sprintf("CREATE POLICY %s ON %s FOR %s %s", name, r.Table, strings.ToUpper(string(a)), clause),
			)
		}
	}
	return out
}

// DisableStatements turns row-level security off again, e.g. for a database that runs
// with enableRLS=false after having been migrated with it on.
func DisableStatements(rules []TableRule) []string {
	var out []string
	for _, r := range rules {
		out = append(out, fmt.Sprintf("ALTER TABLE %s DISABLE ROW LEVEL SECURITY", r.Table))
	}
	return out
}
