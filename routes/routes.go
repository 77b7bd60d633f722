package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/controllers"
	"github.com/aonore/CRM-TRAMITES/middleware"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authController := controllers.AuthController{DB: db}
	clientController := controllers.ClientController{DB: db}
	taskController := controllers.TaskController{DB: db}
	cobroController := controllers.CobroController{DB: db}
	dashboardController := controllers.DashboardController{DB: db}
	settingsController := controllers.SettingsController{DB: db}

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.GET("/clients", clientController.GetClients)
		authorized.POST("/clients", clientController.CreateClient)
		authorized.GET("/clients/:id", clientController.GetClient)
		authorized.PUT("/clients/:id", clientController.UpdateClient)

		authorized.POST("/tasks", taskController.CreateTask)
		authorized.GET("/tasks", taskController.GetTasks)
		authorized.GET("/tasks/:id", taskController.GetTask)
		authorized.PUT("/tasks/:id", taskController.UpdateTask)
		authorized.PUT("/tasks/:id/status", taskController.ChangeStatus)
		authorized.DELETE("/tasks/:id", taskController.DeleteTask)

		authorized.GET("/cobros", cobroController.GetCobros)
		authorized.GET("/dashboard", dashboardController.GetDashboard)

		authorized.GET("/settings", settingsController.GetSettings)
		authorized.PUT("/settings", settingsController.UpdateSettings)
	}

	return r
}
