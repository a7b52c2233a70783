package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/fulfilled/tripprep/internal/cli"
	"github.com/fulfilled/tripprep/internal/llm"
	"github.com/fulfilled/tripprep/internal/places"
	"github.com/fulfilled/tripprep/internal/store"
	"github.com/fulfilled/tripprep/internal/suggest"
	"github.com/fulfilled/tripprep/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	database, err := store.OpenDB(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOpenAIClient(llmCfg, observer)

	app := &cli.App{
		Plans:   store.NewSQLitePlanRepo(database),
		Weather: weather.NewClient(),
		Places:  places.NewClient(),
		Suggest: suggest.NewService(client),
	}

	// Gate the form and checklist commands on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
