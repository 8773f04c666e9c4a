package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path of the TOML config file, environment variables override it",
		EnvVars: []string{"CONFIG_FILE"},
	}

	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "Ronin Planets"
	s.app.Usage = "Game ledger backend"
	s.app.Flags = []cli.Flag{configFlag}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serves the game, reward, claim and wallet apis over HTTP.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start cron jobs",
			Category:    "Worker",
			Description: `Reports overdue claims and backs up the ledger to object storage.`,
		},
		{
			Action:      s.startSubscriber,
			Name:        "events",
			Usage:       "Start ledger event subscriber",
			Category:    "Worker",
			Description: `Consumes ledger events from kafka and logs them.`,
		},
		{
			Action:      s.startStats,
			Name:        "stats",
			Usage:       "Print ledger statistics",
			Category:    "Tool",
			Description: `Prints the admin statistics of the ledger as JSON.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Run a data migration",
			Category: "Tool",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "version",
					Usage:    "Migration version, e.g. 0002",
					Required: true,
				},
			},
			Description: `Runs one versioned migration of the ledger database.`,
		},
	}
}
