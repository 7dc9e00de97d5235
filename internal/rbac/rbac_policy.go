package rbac

import (
	"go-resto/internal/rolecatalog"

	"github.com/casbin/casbin/v2"
)

const (
	RoleRestaurantManager = "Restaurant Manager"
	RoleAssistantManager  = "Assistant Manager"
	// RoleStaff is the implicit parent of every catalog role.
	RoleStaff = "staff"
)

type Permission struct {
	Resource string
	Action   string
	Label    string
	Category string
	// Flag is the key reported by /rbac/me.
	Flag string
}

var Permissions = []Permission{
	{Resource: "schedule", Action: "view", Label: "View schedule", Category: "Schedule", Flag: "canViewSchedule"},
	{Resource: "schedule", Action: "edit", Label: "Edit schedule", Category: "Schedule", Flag: "canEditSchedule"},
	{Resource: "schedule", Action: "assign", Label: "Assign employees", Category: "Schedule", Flag: "canAssignEmployees"},
	{Resource: "shift", Action: "create", Label: "Create shifts", Category: "Schedule", Flag: "canCreateShifts"},
	{Resource: "shift", Action: "delete", Label: "Delete shifts", Category: "Schedule", Flag: "canDeleteShifts"},
	{Resource: "location", Action: "view_all", Label: "View all locations", Category: "Locations", Flag: "canViewAllLocations"},
	{Resource: "role", Action: "manage", Label: "Manage roles", Category: "Staff", Flag: "canManageRoles"},
	{Resource: "employee", Action: "manage", Label: "Manage employees", Category: "Staff", Flag: "canManageEmployees"},
	{Resource: "dish", Action: "manage", Label: "Manage dishes", Category: "Menu", Flag: "canManageDishes"},
	{Resource: "ingredient", Action: "manage", Label: "Manage ingredients", Category: "Menu", Flag: "canManageIngredients"},
}

type grant struct {
	role     string
	resource string
	action   string
}

var grants = []grant{
	{RoleStaff, "schedule", "view"},

	{RoleAssistantManager, "schedule", "edit"},
	{RoleAssistantManager, "schedule", "assign"},
	{RoleAssistantManager, "shift", "create"},
	{RoleAssistantManager, "location", "view_all"},
	{RoleAssistantManager, "employee", "manage"},
	{RoleAssistantManager, "dish", "manage"},
	{RoleAssistantManager, "ingredient", "manage"},

	{RoleRestaurantManager, "shift", "delete"},
	{RoleRestaurantManager, "role", "manage"},
}

// LoadPolicy replaces the enforcer's policy with the static grants. Managers
// inherit assistants, assistants inherit staff, and every catalog role is staff.
// Role names outside the catalog get nothing.
func LoadPolicy(e *casbin.Enforcer, catalog *rolecatalog.Catalog) error {
	e.ClearPolicy()

	for _, g := range grants {
		if _, err := e.AddPolicy(g.role, g.resource, g.action); err != nil {
			return err
		}
	}

	inherits := [][2]string{
		{RoleRestaurantManager, RoleAssistantManager},
		{RoleAssistantManager, RoleStaff},
	}
	for _, entry := range catalog.Entries() {
		if entry.Name == RoleRestaurantManager || entry.Name == RoleAssistantManager {
			continue
		}
		inherits = append(inherits, [2]string{entry.Name, RoleStaff})
	}
	for _, pair := range inherits {
		if _, err := e.AddGroupingPolicy(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}
