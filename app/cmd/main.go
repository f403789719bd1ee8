package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/ribgsilva/note-crud/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
		os.Exit(1)
	}

	// empty logger
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "notes-admin",
		Short:         "Administrative commands of the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
