package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/armviz/armviz/pkg/kinematics"
)

var poseCmd = &cobra.Command{
	Use:   "pose <yaw> <shoulder> <elbow> <wrist>",
	Short: "Compute forward kinematics for joint angles",
	Long:  "Print the world position of every joint for the given angles in degrees.",
	Args:  cobra.ExactArgs(4),
	Run:   runPose,
}

func init() {
	rootCmd.AddCommand(poseCmd)
}

func runPose(cmd *cobra.Command, args []string) {
	var vals [4]float64
	names := [4]string{"yaw", "shoulder", "elbow", "wrist"}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid %s angle %q\n", names[i], arg)
			os.Exit(1)
		}
		vals[i] = v
	}

	angles := kinematics.Angles{
		Yaw:      kinematics.Clamp(vals[0], kinematics.YawMin, kinematics.YawMax),
		Shoulder: kinematics.Clamp(vals[1], kinematics.ShoulderMin, kinematics.ShoulderMax),
		Elbow:    kinematics.Clamp(vals[2], kinematics.ElbowMin, kinematics.ElbowMax),
		Wrist:    kinematics.Clamp(vals[3], kinematics.WristMin, kinematics.WristMax),
	}
	if angles != (kinematics.Angles{Yaw: vals[0], Shoulder: vals[1], Elbow: vals[2], Wrist: vals[3]}) {
		fmt.Fprintln(os.Stderr, "Warning: angles clamped to joint limits")
	}

	p := kinematics.ComputeChain(angles)

	fmt.Println("Joint positions:")
	joints := [5]struct {
		name string
		pos  kinematics.Vector3
	}{
		{"O (base)", p.O},
		{"A (shoulder)", p.A},
		{"B (elbow)", p.B},
		{"C (wrist)", p.C},
		{"D (tip)", p.D},
	}
	for _, j := range joints {
		fmt.Printf("  %-13s (%8.4f, %8.4f, %8.4f)\n", j.name, j.pos.X, j.pos.Y, j.pos.Z)
	}

	extension := p.A.Distance(p.D) / kinematics.Reach
	fmt.Printf("\nTip radius: %.4f units\n", p.TipRadius())
	fmt.Printf("Extension:  %.1f%%\n", extension*100)
}
