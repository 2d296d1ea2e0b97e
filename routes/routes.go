package routes

import (
	"github.com/JanHousa/DrinkWaterApp/controllers"
	"github.com/JanHousa/DrinkWaterApp/middlewares"
	"github.com/JanHousa/DrinkWaterApp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the wired services into the router.
type Deps struct {
	Prefs     *services.PrefStore
	Sessions  *services.SessionService
	Ledger    *services.LedgerService
	Weather   *services.WeatherService
	Health    *services.HealthService
	Reminders *services.ReminderService
	Devices   *services.DeviceManager
	Hub       *services.RealtimeHub
	Push      *services.PushService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	sessionCtl := controllers.NewSessionController(d.Sessions)
	ledgerCtl := controllers.NewLedgerController(d.Ledger, d.Sessions, d.Hub)
	weatherCtl := controllers.NewWeatherController(d.Weather)
	healthCtl := controllers.NewHealthController(d.Health)
	reminderCtl := controllers.NewReminderController(d.Reminders)
	deviceCtl := controllers.NewDeviceController(d.Devices)
	notifyCtl := controllers.NewNotificationController(d.Push)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", sessionCtl.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.Prefs))
	{
		api.POST("/auth/logout", sessionCtl.Logout)
		api.GET("/session", sessionCtl.GetSession)

		api.GET("/ledger/entries", ledgerCtl.ListEntries)
		api.POST("/ledger/entries", ledgerCtl.AddEntry)
		api.DELETE("/ledger/entries", ledgerCtl.RemoveEntry)
		api.GET("/ledger/totals", ledgerCtl.GetTotals)
		api.GET("/ledger/drinks", ledgerCtl.ListDrinks)

		api.GET("/weather/forecast", weatherCtl.GetForecast)
		api.GET("/health-tips", healthCtl.GetTips)

		api.POST("/reminders", reminderCtl.Schedule)
		api.GET("/reminders", reminderCtl.List)
		api.DELETE("/reminders/:id", reminderCtl.Cancel)

		api.GET("/device/status", deviceCtl.Status)
		api.POST("/device/scan", deviceCtl.StartScan)
		api.DELETE("/device/scan", deviceCtl.StopScan)
		api.GET("/device/list", deviceCtl.List)
		api.POST("/device/connect", deviceCtl.Connect)
		api.POST("/device/disconnect", deviceCtl.Disconnect)
		api.GET("/device/volume", deviceCtl.Volume)
		api.PUT("/device/volume", deviceCtl.SetVolume)

		api.POST("/notifications/register", notifyCtl.RegisterDevice)
		api.POST("/notifications/toggle", notifyCtl.Toggle)

		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
