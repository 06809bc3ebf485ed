// Command server runs the delivery tracking HTTP API.
//
// Configuration is read from config.yaml and environment variables; see
// internal/config for the full list of knobs.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/deliverydesk/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
