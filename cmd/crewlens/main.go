package main

import (
	"github.com/alecthomas/kong"

	"github.com/crewlens/crewlens/lib/config"
	"github.com/crewlens/crewlens/lib/consoles"
	"github.com/crewlens/crewlens/lib/logging"
	"github.com/crewlens/crewlens/lib/planapi"
	"github.com/crewlens/crewlens/lib/server"
)

var cli struct {
	EnvFile string `short:"e" help:"Env file to load. Default is ./.env if present." type:"path"`
	Verbose bool   `short:"v" help:"Log at debug level."`

	Serve ServeCmd `cmd:"" help:"Run the query server. MCP over stdio by default."`

	Utilization UtilizationCmd `cmd:"" help:"Show team utilization over the recent actuals window."`
	Projects    ProjectsCmd    `cmd:"" help:"Show projects with budget vs actual effort."`
	Forecast    ForecastCmd    `cmd:"" help:"Show capacity forecast for the coming weeks."`
	Person      PersonCmd      `cmd:"" help:"Show one person's details."`
	Search      SearchCmd      `cmd:"" help:"Search people, projects and clients by name."`
}

type cmdContext struct {
	console consoles.Console
	server  *server.Server

	// onPage is set by console commands to drive a progress spinner while
	// the server fetches.
	onPage func(path string, page, items int)
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	cfg, err := config.Load(cli.EnvFile)
	ctx.FatalIfErrorf(err)

	level := cfg.LogLevel
	if cli.Verbose {
		level = "debug"
	}
	log := logging.New(cfg.LogFile, level)

	cmdCtx := &cmdContext{
		console: consoles.NewStdOutConsole(),
	}

	client := planapi.NewClient(planapi.Options{
		BaseURL:  cfg.APIURL,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
		MaxPages: cfg.MaxPages,
		Logger:   log,
		OnPage: func(path string, page, items int) {
			if cmdCtx.onPage != nil {
				cmdCtx.onPage(path, page, items)
			}
		},
	})

	cmdCtx.server = server.New(client, log, nil)

	err = ctx.Run(cmdCtx)
	ctx.FatalIfErrorf(err)
}
