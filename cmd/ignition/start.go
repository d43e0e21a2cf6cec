package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
)

func doStart() {
	app := newApp()

	appCtx, err := app.Run()
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println("Application started!")

	// Handle SIGINT (CTRL+C) gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	<-ctx.Done()
	stop()

	err = appCtx.Shutdown()
	if err != nil {
		log.Fatalln(err)
	}
}
