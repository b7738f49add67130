package routes

import (
	"github.com/mel-lim/listmaker-backend/config"
	"github.com/mel-lim/listmaker-backend/controllers"
	"github.com/mel-lim/listmaker-backend/middleware"
	"github.com/mel-lim/listmaker-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRouter собирает все маршруты приложения
func SetupRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "https://kitcollab.netlify.app"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	listService := services.NewListService(db)

	userController := controllers.NewUserController(db, rdb, cfg)
	tripController := controllers.NewTripController(services.NewTripService(db))
	listController := controllers.NewListController(listService)
	listItemController := controllers.NewListItemController(listService)
	adminController := controllers.NewAdminController(db)
	contactController := controllers.NewContactController(cfg)

	auth := middleware.JWTAuthMiddleware(rdb, cfg.JWTSecret)

	appusers := r.Group("/appusers")
	{
		appusers.POST("/signup", userController.Signup)
		appusers.POST("/login", userController.Login)
		appusers.GET("/logout", userController.Logout)
		appusers.POST("/tryasguest", userController.TryAsGuest)
		appusers.GET("/accountdetails", auth, userController.AccountDetails)
	}

	google := r.Group("/auth/google")
	{
		google.GET("", userController.GoogleLogin)
		google.GET("/callback", userController.GoogleCallback)
	}

	trips := r.Group("/trips", auth)
	{
		trips.GET("/alltrips", tripController.AllTrips)
		trips.POST("/newtrip", tripController.NewTrip)

		trip := trips.Group("/:tripId", middleware.TripScopeMiddleware(db))
		{
			trip.PUT("/edittripdetails", tripController.EditTripDetails)
			trip.DELETE("/deletetrip", tripController.DeleteTrip)

			lists := trip.Group("/lists")
			{
				lists.GET("/fetchlists", listController.FetchLists)
				lists.POST("/savelists", listController.SaveLists)
				lists.POST("/createnew", listController.CreateNew)

				list := lists.Group("/:listId", middleware.ListScopeMiddleware(db))
				{
					list.PUT("/edit", listController.Edit)
					list.DELETE("/delete", listController.Delete)

					items := list.Group("/listitems")
					{
						items.POST("/addnew", listItemController.AddNew)

						item := items.Group("/:itemId", middleware.ItemScopeMiddleware(db))
						{
							item.PUT("/edit", listItemController.Edit)
							item.PUT("/delete", listItemController.Delete)
							item.PUT("/undodelete", listItemController.UndoDelete)
						}
					}
				}
			}
		}
	}

	r.POST("/contact", contactController.Send)

	admin := r.Group("/admin", auth, middleware.AdminMiddleware(db))
	{
		admin.GET("/test", adminController.Test)
		admin.GET("/appusers", adminController.ListAppUsers)
		admin.DELETE("/appusers/:appUserId", adminController.DeleteAppUser)
	}

	return r
}
