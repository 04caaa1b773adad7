package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kevinreyes061304-ops/meal-planner/controllers"
	"github.com/kevinreyes061304-ops/meal-planner/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes, rate limited per IP
	limiter := middlewares.NewRateLimiter(5, 10)
	auth := r.Group("/auth")
	auth.Use(limiter.Limit())
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	authRequired := middlewares.AuthMiddleware()

	dashboard := r.Group("/dashboard")
	dashboard.Use(authRequired)
	{
		dashboard.GET("", controllers.GetDashboard)
	}

	plan := r.Group("/weekly-plan")
	plan.Use(authRequired)
	{
		plan.GET("", controllers.GetWeeklyPlan)
		plan.POST("", controllers.SaveWeeklyPlan)
		plan.POST("/clear", controllers.ClearWeek)
		plan.POST("/delete-day/:date", controllers.DeleteDay)
		plan.POST("/delete-meal/:date/:mealType", controllers.DeleteMeal)
	}

	recipes := r.Group("/recipes")
	recipes.Use(authRequired)
	{
		recipes.GET("", controllers.ListMyRecipes)
		recipes.POST("", controllers.AddRecipe)
		recipes.GET("/popular", controllers.ListPopularRecipes)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.DELETE("/:id", controllers.DeleteRecipe)
		recipes.POST("/:id/plan", controllers.AddRecipeToPlan)
	}

	comments := r.Group("/comments")
	comments.Use(authRequired)
	{
		comments.GET("", controllers.ListComments)
		comments.POST("", controllers.AddComment)
	}

	user := r.Group("/user")
	user.Use(authRequired)
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.PUT("/password", controllers.ChangePassword)
		user.POST("/delete", controllers.DeleteAccount)
	}

	return r
}
