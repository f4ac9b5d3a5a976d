package main

import (
	"log"

	"github.com/vfranco00/Nutri-Agent/config"
	"github.com/vfranco00/Nutri-Agent/controllers"
	"github.com/vfranco00/Nutri-Agent/routes"
	"github.com/vfranco00/Nutri-Agent/services"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	oracle := services.NewGeminiService(cfg.GeminiAPIKey)

	authSvc := services.NewAuthService(db, cfg)
	userSvc := services.NewUserService(db)
	profileSvc := services.NewProfileService(db)
	recipeSvc := services.NewRecipeService(db)
	shoppingSvc := services.NewShoppingService(db)
	calorieSvc := services.NewCalorieService(db, oracle)
	planSvc := services.NewPlanService(oracle)

	r := routes.SetupRouter(routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		Profile:    controllers.NewProfileController(profileSvc),
		AI:         controllers.NewAIController(planSvc, calorieSvc, profileSvc),
		Recipe:     controllers.NewRecipeController(recipeSvc),
		Ingredient: controllers.NewIngredientController(recipeSvc),
		Shopping:   controllers.NewShoppingController(shoppingSvc),
		Admin:      controllers.NewAdminController(userSvc),
	}, db, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
