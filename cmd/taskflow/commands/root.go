package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskflow/internal/api"
	"taskflow/internal/board"
	"taskflow/internal/config"
	"taskflow/internal/session"
	"taskflow/internal/store"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow - task management from the terminal",
	Long: `TaskFlow groups tasks into color-coded categories and moves them
through a three-state workflow (Pending, In Progress, Completed).

The CLI talks to a TaskFlow API server (taskflowd); set TASKFLOW_API to
point it somewhere other than http://localhost:8000/api.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the client-side pieces every command needs: session, API
// client, entity store and the command/transition layers on top.
type app struct {
	session  *session.Session
	client   *api.Client
	store    *store.Store
	commands *board.Commands
	board    *board.Controller
}

func newApp() (*app, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	sess := session.New(cfg.StateDir)
	if err := sess.Init(); err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.BaseURL, sess)
	st := store.New()
	a := &app{
		session: sess,
		client:  client,
		store:   st,
	}
	a.commands = board.NewCommands(client, st, func() {
		sess.Teardown()
		fmt.Println("Session expired; please log in again.")
	})
	a.board = board.NewController(st, client)
	return a, nil
}
