// cmd/leaguectl/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/teamdesk/internal/config"
)

const usage = `usage: leaguectl [flags] <command> <file>...

commands:
  validate   check every file for malformed league groups
  sanitize   repair a state file and print it as JSON
  standings  print the standings message for every league in the files
  bracket    print the bracket message for every knockout in the files
  schedule   regenerate all preliminary fixtures of a state file
  move       move a team between preliminary groups (-match -team -from -to)
`

type options struct {
	cfg     *config.Config
	matchID string
	teamID  string
	from    string
	to      string
	out     io.Writer
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.App.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		matchID    = flag.String("match", "", "Match id holding the competition (move)")
		teamID     = flag.String("team", "", "Team id to move (move)")
		from       = flag.String("from", "", "Source group name (move)")
		to         = flag.String("to", "", "Target group name (move)")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogger(cfg)

	opts := options{
		cfg:     cfg,
		matchID: *matchID,
		teamID:  *teamID,
		from:    *from,
		to:      *to,
		out:     os.Stdout,
	}

	command, files := strings.ToLower(args[0]), args[1:]
	if err := run(command, files, opts); err != nil {
		log.Error().Err(err).Str("command", command).Msg("Command failed")
		os.Exit(1)
	}
}
