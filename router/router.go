package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/centralsales/sales-api/config"
	"github.com/centralsales/sales-api/controllers"
	"github.com/centralsales/sales-api/middlewares"
)

// SetupRouter wires the route table. rdb may be nil; the list-response cache
// is then a pass-through.
func SetupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(db)
	tableCtrl := controllers.NewTableController(db)
	roleCtrl := controllers.NewRoleController(db)
	permissionCtrl := controllers.NewPermissionController(db)

	listCache := middlewares.ResponseCache(rdb, config.CacheTTL())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// RESERVATIONS
	auth.GET("/reservations", listCache, reservationCtrl.GetAllReservations)
	auth.POST("/reservations", reservationCtrl.CreateReservation)
	auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.PatchReservation)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// TABLES
	auth.GET("/tables", listCache, tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.PatchTable)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// ROLES + assignments
	auth.GET("/roles", listCache, roleCtrl.GetAllRoles)
	auth.POST("/roles", roleCtrl.CreateRole)
	auth.GET("/roles/:role_id", roleCtrl.GetRoleByID)
	auth.PATCH("/roles/:role_id", roleCtrl.PatchRole)
	auth.DELETE("/roles/:role_id", roleCtrl.DeleteRole)
	auth.POST("/roles/:role_id/permissions", roleCtrl.AssignPermission)
	auth.DELETE("/roles/:role_id/permissions/:permission_id", roleCtrl.RemovePermission)
	auth.POST("/roles/:role_id/users", roleCtrl.AssignUser)
	auth.DELETE("/roles/:role_id/users/:user_id", roleCtrl.RemoveUser)

	// PERMISSIONS
	auth.GET("/permissions", permissionCtrl.GetAllPermissions)
	auth.POST("/permissions", permissionCtrl.CreatePermission)
	auth.DELETE("/permissions/:permission_id", permissionCtrl.DeletePermission)

	return r
}
