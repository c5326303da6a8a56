package cmd

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/wxxedu/flusty/config"
	"github.com/wxxedu/flusty/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default flusty.toml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		target := filepath.Join(cwd, config.ConfigFileName)
		if _, err := os.Stat(target); err == nil {
			return errors.Newf("%s already exists", target)
		}
		if err := config.Default(cwd).Write(cwd); err != nil {
			return err
		}
		pterm.Success.Printfln("wrote %s", target)
		return nil
	},
}
