package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/armviz/armviz/version"
)

var rootCmd = &cobra.Command{
	Use:   "armviz",
	Short: "Interactive visualizer for a 4-DOF robot arm",
	Long: `armviz simulates a yaw-shoulder-elbow-wrist robot arm. It renders the
kinematic chain in an interactive 3D view, solves inverse kinematics for
drag targets, and prints forward and inverse solutions from the command
line.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
