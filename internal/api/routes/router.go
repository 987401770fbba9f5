package routes

import (
	"github.com/agrisetu/registry-go/internal/api/handlers"
	"github.com/agrisetu/registry-go/internal/api/middleware"
	"github.com/agrisetu/registry-go/internal/application"
	"github.com/agrisetu/registry-go/internal/config/db"
	"github.com/agrisetu/registry-go/internal/cron"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/repository"
	"github.com/agrisetu/registry-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *storage.Store, publisher *notify.Publisher) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, publisher)
	h := handlers.New(services, store, publisher)

	// Start background tasks
	cron.StartCleanupTask(services.Audit)

	// public
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.POST("/registrations", h.Registration.CreateRegistration)

	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.User.AuthStatus)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", h.Notification.Stream)

		farmers := auth.Group("/farmers")
		{
			farmers.GET("", h.Farmer.ListFarmers)
			farmers.POST("", h.Farmer.CreateFarmer)
			farmers.GET("/export", h.Farmer.ExportFarmers)
			farmers.GET("/unassigned", h.Farmer.ListUnassigned)
			farmers.POST("/assign", h.Farmer.AssignFarmers)
			farmers.GET("/:id", h.Farmer.GetFarmer)
			farmers.PUT("/:id", h.Farmer.UpdateFarmer)
			farmers.DELETE("/:id", middleware.Admin(), h.Farmer.DeleteFarmer)
			farmers.PUT("/:id/unassign", h.Farmer.UnassignFarmer)

			farmers.PUT("/:id/kyc/submit", h.Farmer.SubmitKyc)
			farmers.PUT("/:id/kyc/approve", middleware.Admin(), h.Farmer.ApproveKyc)
			farmers.PUT("/:id/kyc/reject", middleware.Admin(), h.Farmer.RejectKyc)
			farmers.PUT("/:id/kyc/refer-back", middleware.Admin(), h.Farmer.ReferBackKyc)

			farmers.POST("/:id/card", middleware.Admin(), h.Card.IssueCard)
			farmers.GET("/:id/card", h.Card.GetCard)
			farmers.DELETE("/:id/card", middleware.Admin(), h.Card.RevokeCard)
		}

		employees := auth.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.POST("", middleware.Admin(), h.Employee.CreateEmployee)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.PUT("/:id", middleware.Admin(), h.Employee.UpdateEmployee)
			employees.DELETE("/:id", middleware.Admin(), h.Employee.DeleteEmployee)
			employees.GET("/:id/farmers", h.Employee.ListAssignedFarmers)
		}

		registrations := auth.Group("/registrations")
		{
			registrations.GET("", middleware.Admin(), h.Registration.ListRegistrations)
			registrations.GET("/:id", middleware.Admin(), h.Registration.GetRegistration)
			registrations.PUT("/:id/approve", middleware.Admin(), h.Registration.ApproveRegistration)
			registrations.PUT("/:id/reject", middleware.Admin(), h.Registration.RejectRegistration)
		}

		fpos := auth.Group("/fpos")
		{
			fpos.GET("", h.FPO.ListFPOs)
			fpos.POST("", middleware.Admin(), h.FPO.CreateFPO)
			fpos.GET("/:id", h.FPO.GetFPO)
			fpos.PUT("/:id", middleware.Admin(), h.FPO.UpdateFPO)
			fpos.DELETE("/:id", middleware.Admin(), h.FPO.DeleteFPO)

			registerSubRoutes(fpos, services)
		}

		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", middleware.Admin(), h.User.DeleteUser)
		}

		dashboard := auth.Group("/dashboard")
		{
			dashboard.GET("/stats", h.Dashboard.GetStats)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), h.Audit.GetAuditLogs)
		}

		documents := auth.Group("/documents")
		{
			documents.POST("", h.Document.Upload)
			documents.GET("/:key/url", h.Document.GetURL)
			documents.DELETE("/:key", middleware.Admin(), h.Document.Delete)
		}
	}
}

// registerSubRoutes mounts the FPO sub-collections. Each one is the
// same CRUD shape bound to a different service method set.
func registerSubRoutes(fpos *gin.RouterGroup, services *application.Services) {
	svc := services.FPO

	board := fpos.Group("/:id/board-members")
	{
		board.GET("", handlers.SubList(svc.ListBoardMembers))
		board.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateBoardMember))
		board.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateBoardMember))
		board.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteBoardMember))
	}

	farmServices := fpos.Group("/:id/farm-services")
	{
		farmServices.GET("", handlers.SubList(svc.ListFarmServices))
		farmServices.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateFarmService))
		farmServices.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateFarmService))
		farmServices.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteFarmService))
	}

	turnovers := fpos.Group("/:id/turnovers")
	{
		turnovers.GET("", handlers.SubList(svc.ListTurnoverRecords))
		turnovers.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateTurnoverRecord))
		turnovers.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateTurnoverRecord))
		turnovers.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteTurnoverRecord))
	}

	crops := fpos.Group("/:id/crops")
	{
		crops.GET("", handlers.SubList(svc.ListCropEntries))
		crops.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateCropEntry))
		crops.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateCropEntry))
		crops.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteCropEntry))
	}

	shops := fpos.Group("/:id/input-shops")
	{
		shops.GET("", handlers.SubList(svc.ListInputShops))
		shops.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateInputShop))
		shops.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateInputShop))
		shops.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteInputShop))
	}

	categories := fpos.Group("/:id/product-categories")
	{
		categories.GET("", handlers.SubList(svc.ListProductCategories))
		categories.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateProductCategory))
		categories.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateProductCategory))
		categories.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteProductCategory))
	}

	products := fpos.Group("/:id/products")
	{
		products.GET("", handlers.SubList(svc.ListProducts))
		products.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateProduct))
		products.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateProduct))
		products.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteProduct))
	}

	fpoUsers := fpos.Group("/:id/users")
	{
		fpoUsers.GET("", handlers.SubList(svc.ListFPOUsers))
		fpoUsers.POST("", middleware.Admin(), handlers.SubCreate(svc.CreateFPOUser))
		fpoUsers.PUT("/:subId", middleware.Admin(), handlers.SubUpdate(svc.UpdateFPOUser))
		fpoUsers.DELETE("/:subId", middleware.Admin(), handlers.SubDelete(svc.DeleteFPOUser))
	}
}
