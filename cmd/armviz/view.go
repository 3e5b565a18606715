package main

import (
	"github.com/spf13/cobra"

	"github.com/armviz/armviz/internal/app"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive 3D viewer",
	Long:  "Open a window showing the arm. Drag the end-effector to move it, use the sliders for direct joint control, and press R to reset.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.Run()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
