package main

import (
	"context"
	"os"

	"github.com/dsu-aiml/portal/internal/pkg/logger"
	"github.com/dsu-aiml/portal/internal/server"
)

func main() {
	// Startup failures (config, database, migrations) exit before listening
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
