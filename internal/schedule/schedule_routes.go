package schedule

import (
	"go-resto/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	stack middleware.Stack,
) {
	schedule := r.Group("/schedule")
	schedule.Use(stack.Protected()...)
	{
		schedule.GET("/shifts",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.ListShifts,
		)
		schedule.GET("/shifts/:date",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.GetShift,
		)
		schedule.POST("/shifts",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "shift", "create"),
			handler.CreateShift,
		)
		schedule.PUT("/shifts/:date",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "edit"),
			handler.UpdateShift,
		)
		schedule.DELETE("/shifts/:date",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "shift", "delete"),
			handler.DeleteShift,
		)

		schedule.GET("/employee-schedules",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.ListEmployeeSchedules,
		)
		schedule.GET("/assignments",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.ListAssignments,
		)
		schedule.POST("/assign",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "assign"),
			stack.Idempotent(),
			handler.Assign,
		)
		schedule.GET("/can-assign",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "assign"),
			handler.CheckAssign,
		)
		schedule.DELETE("/unassign",
			stack.WriteLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "assign"),
			handler.Unassign,
		)

		schedule.GET("/employees/role/:roleId",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.EmployeesByRole,
		)
		schedule.GET("/validation/:startDate/:endDate",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.Validate,
		)
		schedule.GET("/week",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.Week,
		)
		schedule.GET("/week/export",
			stack.ReadLimit(),
			middleware.RBACAuthorize(rbacService, "schedule", "view"),
			handler.ExportWeek,
		)
	}
}
