package cmd

import (
	goflag "flag"
	"os"
	"runtime/pprof"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chip8go/chip8"
	"chip8go/ui"
)

var (
	clock      int
	scale      int
	cpuprofile string
)

var runCmd = &cobra.Command{
	Use:   "run [ROM]",
	Short: "Run a CHIP-8 ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	runCmd.Flags().IntVarP(&clock, "clock", "c", 500, "instruction rate in Hz")
	runCmd.Flags().IntVarP(&scale, "scale", "s", 10, "window scale factor")
	runCmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile to file")
	viper.BindPFlag("clock", runCmd.Flags().Lookup("clock"))
	viper.BindPFlag("scale", runCmd.Flags().Lookup("scale"))
}

func run(cmd *cobra.Command, args []string) error {
	// glog complains about logging before flag.Parse otherwise.
	goflag.CommandLine.Parse([]string{})
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	console, err := chip8.NewConsole(rom)
	if err != nil {
		return err
	}
	glog.Infof("loaded %s (%d bytes)", args[0], len(rom))
	return ui.Start(console, viper.GetInt("clock"), viper.GetInt("scale"))
}
