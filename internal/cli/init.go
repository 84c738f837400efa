package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/minic/internal/config"
	"github.com/example/minic/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .minic/config.json and the history database",
		Long: `Write a default .minic/config.json in the current directory and
initialize the history database at ~/.minic/minic.db.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initRunE(os.Getwd, initDatabase, force, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}

func initDatabase() (string, error) {
	if _, err := db.GetDB(); err != nil {
		return "", err
	}
	return db.GetDBPath()
}

// initRunE writes the default config and initializes the database.
// getwd and initDB are injected for testing.
func initRunE(getwd func() (string, error), initDB func() (string, error), force bool, out io.Writer) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := filepath.Join(dir, ".minic", "config.json")
	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", configPath)
	} else {
		if err := config.SaveConfig(dir, config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config written to %s\n", configPath)
	}

	dbPath, err := initDB()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	fmt.Fprintf(out, "✓ Database initialized at %s\n", dbPath)

	return nil
}
