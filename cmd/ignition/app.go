package main

import (
	"gitlab.com/pala-software/ignition/pkg/boot"
	"gitlab.com/pala-software/ignition/pkg/database"
	"gitlab.com/pala-software/ignition/pkg/httpserver"
	"gitlab.com/pala-software/ignition/pkg/otel"
)

func newApp() *boot.App {
	app := boot.NewApp("ignition")

	multicaster := boot.NewEventMulticaster()
	otel.LogEvents(multicaster)
	app.Listeners.Register(boot.EventPublishingRunListener{
		Application: app.Name,
		Multicaster: multicaster,
	})

	app.Features.Register(otel.OTelFromEnv())
	app.Features.Register(database.DatabaseFromEnv())
	app.Features.Register(httpserver.HTTPServerFromEnv())

	return app
}
