package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dsu-aiml/portal/internal/app/migrations"
	"github.com/dsu-aiml/portal/internal/app/repositories"
	"github.com/dsu-aiml/portal/internal/bootstrap"
	"github.com/dsu-aiml/portal/internal/db"
	"github.com/dsu-aiml/portal/internal/seed"
)

const usage = `Usage: migrator <command>

Commands:
  up      apply all pending migrations
  down    roll back the most recent migration
  status  print the state of every migration
  seed    insert default rows into empty tables
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	ctx := context.Background()
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	migrator, err := migrations.NewMigrator(database.SQLDB(), lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to create migrator")
	}

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "seed":
		repos := repositories.NewRepositories(database.Pool)
		err = seed.CreateDefaultData(ctx, repos.StudentRepository, repos.FacultyRepository, lgr)
	default:
		flag.Usage()
		database.Close()
		os.Exit(2)
	}

	if err != nil {
		lgr.Error().Err(err).Msg("Migrator command failed")
		database.Close()
		os.Exit(1)
	}
}
