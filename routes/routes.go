package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth        *controllers.AuthController
	Building    *controllers.BuildingController
	Floor       *controllers.FloorController
	Room        *controllers.RoomController
	Allocation  *controllers.AllocationController
	Student     *controllers.StudentController
	Complaint   *controllers.ComplaintController
	Maintenance *controllers.MaintenanceController
	Visitor     *controllers.VisitorController
	Notice      *controllers.NoticeController
	Fee         *controllers.FeeController
}

func SetupRouter(ctl Controllers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		buildings := protected.Group("/buildings")
		{
			buildings.GET("", ctl.Building.List)
			buildings.POST("", ctl.Building.Create)
			buildings.GET("/:id", ctl.Building.Get)
			buildings.PUT("/:id", ctl.Building.Update)
			buildings.DELETE("/:id", ctl.Building.Delete)
		}

		floors := protected.Group("/floors")
		{
			floors.GET("", ctl.Floor.List)
			floors.POST("", ctl.Floor.Create)
			floors.GET("/:id", ctl.Floor.Get)
			floors.PUT("/:id", ctl.Floor.Update)
			floors.DELETE("/:id", ctl.Floor.Delete)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", ctl.Room.List)
			rooms.POST("", ctl.Room.Create)
			rooms.GET("/:id", ctl.Room.Get)
			rooms.PUT("/:id", ctl.Room.Update)
			rooms.PATCH("/:id/status", ctl.Room.SetStatus)
			rooms.DELETE("/:id", ctl.Room.Delete)
		}

		allocations := protected.Group("/allocations")
		{
			allocations.POST("", ctl.Allocation.CreateAllocation)
			allocations.POST("/bulk", ctl.Allocation.BulkAllocate)
			allocations.PUT("/:id", ctl.Allocation.UpdateAllocation)
			allocations.DELETE("/:id", ctl.Allocation.Deallocate)
		}

		students := protected.Group("/students")
		{
			students.GET("", ctl.Student.List)
			students.POST("", ctl.Student.Create)
			students.GET("/:id", ctl.Student.Get)
			students.PUT("/:id", ctl.Student.Update)
			students.DELETE("/:id", ctl.Student.Deactivate)
			students.GET("/:id/allocations", ctl.Allocation.History)
		}

		complaints := protected.Group("/complaints")
		{
			complaints.GET("", ctl.Complaint.List)
			complaints.POST("", ctl.Complaint.File)
			complaints.GET("/:id", ctl.Complaint.Get)
			complaints.PATCH("/:id/status", ctl.Complaint.Transition)
		}

		maintenance := protected.Group("/maintenance")
		{
			maintenance.GET("", ctl.Maintenance.List)
			maintenance.POST("", ctl.Maintenance.Open)
			maintenance.PATCH("/:id/status", ctl.Maintenance.Transition)
		}

		visitors := protected.Group("/visitors")
		{
			visitors.GET("", ctl.Visitor.List)
			visitors.POST("", ctl.Visitor.CheckIn)
			visitors.PATCH("/:id/checkout", ctl.Visitor.CheckOut)
		}

		announcements := protected.Group("/announcements")
		{
			announcements.GET("", ctl.Notice.ListAnnouncements)
			announcements.POST("", ctl.Notice.PublishAnnouncement)
			announcements.DELETE("/:id", ctl.Notice.DeleteAnnouncement)
		}

		events := protected.Group("/events")
		{
			events.GET("", ctl.Notice.ListEvents)
			events.POST("", ctl.Notice.CreateEvent)
			events.GET("/:id", ctl.Notice.GetEvent)
			events.DELETE("/:id", ctl.Notice.DeleteEvent)
		}

		fees := protected.Group("/fees")
		{
			fees.GET("", ctl.Fee.List)
			fees.POST("", ctl.Fee.Create)
			fees.GET("/:id", ctl.Fee.Get)
			fees.POST("/:id/payments", ctl.Fee.RecordCashPayment)
			fees.POST("/:id/order", ctl.Fee.CreateOrder)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("/confirm", ctl.Fee.ConfirmPayment)
		}
	}

	return r
}
