package main

import (
	"github.com/aonore/CRM-TRAMITES/config"
	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/routes"
	"github.com/aonore/CRM-TRAMITES/utils"
)

func main() {
	settings := config.Load()
	utils.SetJWTSecret(settings.JWTSecret)
	db := config.ConnectDB(settings)
	db.AutoMigrate(&models.Client{}, &models.Task{}, &models.TaskActivity{}, &models.User{})
	r := routes.SetupRouter(db)
	r.Run(settings.Addr)
}
