package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-freight-dashboard/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
	}
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	cfg.SheetID = "your-sheet-id"
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("✅ Wrote %s. Set sheet_id and credentials_file, then run `dashboard serve`\n", cfgFile)
	return nil
}
