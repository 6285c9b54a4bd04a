// Package categories implements the command that lists learned categories.
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MusikPolice/ofxcat-sub001/cmd/root"
)

// Cmd is the categories command.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the learned category names",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := root.OpenStore()
		if err != nil {
			return err
		}
		for _, name := range s.GetNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
