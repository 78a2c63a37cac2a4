package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/flownote/flownote/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flownote",
		Short: "FlowNote API Server",
		Long:  `FlowNote is a personal productivity backend: tasks, calendar, habits, journal, and an AI assistant that turns natural language into scheduled tasks.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
