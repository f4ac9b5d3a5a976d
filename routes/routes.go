package routes

import (
	"net/http"
	"time"

	"github.com/vfranco00/Nutri-Agent/controllers"
	"github.com/vfranco00/Nutri-Agent/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Controllers groups everything SetupRouter needs to wire the routes.
type Controllers struct {
	Auth       *controllers.AuthController
	Profile    *controllers.ProfileController
	AI         *controllers.AIController
	Recipe     *controllers.RecipeController
	Ingredient *controllers.IngredientController
	Shopping   *controllers.ShoppingController
	Admin      *controllers.AdminController
}

func SetupRouter(ctls Controllers, db *gorm.DB, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"project": "NutriAgent",
			"status":  "online",
			"version": "0.1.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctls.Auth.Register)
		auth.POST("/login", ctls.Auth.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(jwtSecret))

	profiles := authed.Group("/profiles")
	{
		profiles.GET("/me", ctls.Profile.GetMe)
		profiles.PUT("/me", ctls.Profile.UpsertMe)
		profiles.POST("/weight", ctls.Profile.AddWeight)
		profiles.GET("/weight/history", ctls.Profile.WeightHistory)
	}

	recipes := authed.Group("/recipes")
	{
		recipes.POST("", ctls.Recipe.Create)
		recipes.GET("", ctls.Recipe.List)
		recipes.GET("/:id", ctls.Recipe.Get)
		recipes.PUT("/:id", ctls.Recipe.Update)
		recipes.DELETE("/:id", ctls.Recipe.Delete)
		recipes.PATCH("/:id/favorite", ctls.Recipe.ToggleFavorite)
	}

	ingredients := authed.Group("/ingredients")
	{
		ingredients.POST("", ctls.Ingredient.Add)
		ingredients.GET("/recipe/:recipe_id", ctls.Ingredient.ListByRecipe)
	}

	shopping := authed.Group("/shopping")
	{
		shopping.GET("", ctls.Shopping.ListLists)
		shopping.POST("", ctls.Shopping.CreateList)
		shopping.DELETE("/:id", ctls.Shopping.DeleteList)
		shopping.POST("/:id/items", ctls.Shopping.AddItem)
		shopping.PATCH("/items/:item_id/toggle", ctls.Shopping.ToggleItem)
		shopping.DELETE("/items/:item_id", ctls.Shopping.DeleteItem)
	}

	// Oracle-backed endpoints are expensive and blocking, so they get a
	// per-client rate limit on top of auth.
	ai := authed.Group("/ai")
	ai.Use(aiRateLimiter())
	{
		ai.POST("/generate-plan", ctls.AI.GeneratePlan)
		ai.POST("/recipe-by-ingredients", ctls.AI.RecipeByIngredients)
		ai.POST("/calculate-calories", ctls.AI.CalculateCalories)
	}

	admin := authed.Group("/admin")
	admin.Use(middlewares.SuperuserMiddleware(db))
	{
		admin.GET("/users", ctls.Admin.ListUsers)
		admin.DELETE("/users/:id", ctls.Admin.DeleteUser)
	}

	return r
}

// aiRateLimiter allows a burst of 5 AI calls per client, refilling one
// every 2 seconds.
func aiRateLimiter() gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(2*time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many AI requests"})
	})
}
