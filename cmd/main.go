package main

import (
	"log"

	"github.com/JanHousa/DrinkWaterApp/config"
	"github.com/JanHousa/DrinkWaterApp/routes"
	"github.com/JanHousa/DrinkWaterApp/services"
)

func main() {
	config.InitDB()

	prefs := services.NewPrefStore(config.DB)
	sessions := services.NewSessionService(prefs)
	ledger := services.NewLedgerService(prefs)
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push delivery disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	reminders := services.NewReminderService(func(r services.Reminder) {
		services.EmitAlert("reminder", "Time to drink!", "Don't forget your regular fluid intake.")
	})

	devices := services.NewDeviceManager(services.NewEnvAdapter())
	go func() {
		for ev := range devices.Events() {
			hub.Broadcast(ev)
		}
	}()

	r := routes.SetupRouter(routes.Deps{
		Prefs:     prefs,
		Sessions:  sessions,
		Ledger:    ledger,
		Weather:   services.NewWeatherService(),
		Health:    services.NewHealthService(),
		Reminders: reminders,
		Devices:   devices,
		Hub:       hub,
		Push:      push,
	})
	r.Run(":8080")
}
