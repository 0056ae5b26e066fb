package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"trackshift.klederson.com/internal/app"
	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/demo"
	"trackshift.klederson.com/internal/log"
	"trackshift.klederson.com/internal/openf1"
	"trackshift.klederson.com/internal/provider"
	"trackshift.klederson.com/internal/telemetry"
)

const envPrefix = "TRACKSHIFT"

// commands that own the terminal log to a file by default
const tuiAnnotation = "tui"

var cfgFile string

func main() {
	rootCmd := newRootCmd()
	cobra.OnInitialize(func() { initConfig(rootCmd) })

	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trackshift",
		Short: "TRACKSHIFT - retro terminal replays of motorsport telemetry",
		Long: `TRACKSHIFT replays recorded car telemetry on a retro character-grid
track map: a whole race with a live leaderboard, or one driver lap by lap
with a speed coloured trail.

Telemetry is fetched from the OpenF1 API and cached on disk.
Use --demo for a synthetic race that needs no network.`,
		Version:           config.AppVersion,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trackshift.yaml)")
	pf.IntVar(&config.Year, "year", 2025, "Season of the event")
	pf.StringVar(&config.Event, "event", "Spain", "Event location, country or circuit")
	pf.StringVar(&config.Session, "session", "Race", "Session name")
	pf.StringVar(&config.CacheDir, "cache-dir", config.DefaultCacheDir, "Directory of the API response cache")
	pf.StringVar(&config.APIURL, "api-url", config.DefaultAPIURL, "Base URL of the OpenF1 API")
	pf.BoolVar(&config.Demo, "demo", false, "Replay a synthetic race (no network required)")
	pf.StringVar(&config.LogFile, "log-file", "", "Log destination (default trackshift.log for replays, stderr otherwise)")
	pf.StringVar(&config.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRaceCmd(), newLapCmd(), newStandingsCmd(), newLapsCmd())
	return rootCmd
}

func newRaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "race",
		Short:       "Replay a whole race with a leaderboard",
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closeProvider, err := newProvider()
			if err != nil {
				return err
			}
			defer closeProvider()

			r, err := telemetry.LoadRace(cmd.Context(), p, config.Drivers)
			if err != nil {
				return err
			}
			return runProgram(app.NewRace(r))
		},
	}
	cmd.Flags().StringSliceVar(&config.Drivers, "drivers", []string{"HAM", "VER", "LEC"}, "Driver codes to replay")
	return cmd
}

func newLapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "lap",
		Short:       "Replay one driver lap by lap",
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, closeProvider, err := newProvider()
			if err != nil {
				return err
			}
			defer closeProvider()

			session, set, err := telemetry.LoadLapSet(cmd.Context(), p, strings.ToUpper(config.Driver))
			if err != nil {
				return err
			}
			return runProgram(app.NewLap(session, set))
		},
	}
	cmd.Flags().StringVar(&config.Driver, "driver", "HAM", "Driver code to replay")
	return cmd
}

func runProgram(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	_, err := p.Run()
	return err
}

// newProvider returns the telemetry source selected by the flags and a
// function releasing its resources.
func newProvider() (provider.Provider, func(), error) {
	if config.Demo {
		return demo.New(config.DemoLaps, config.DemoSeed), func() {}, nil
	}

	cache, err := openf1.OpenCache(config.CacheDir)
	if err != nil {
		return nil, nil, err
	}
	if n, err := cache.Len(); err == nil {
		log.Logger.Debug("response cache opened",
			zap.String("dir", config.CacheDir),
			zap.Int("entries", n))
	}
	client := openf1.NewClient(config.APIURL, cache)
	p := openf1.NewProvider(client, config.Year, config.Event, config.Session)
	return p, func() { _ = cache.Close() }, nil
}

func setup(cmd *cobra.Command, args []string) error {
	path := config.LogFile
	if path == "" && cmd.Annotations[tuiAnnotation] == "true" {
		path = config.DefaultLogFile
	}
	if err := log.Init(path, config.LogLevel); err != nil {
		return errors.Wrap(err, "initialising logger")
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig(rootCmd *cobra.Command) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trackshift")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// bindFlags applies config file and environment values to every flag the
// user did not set explicitly.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// --cache-dir is read from TRACKSHIFT_CACHE_DIR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, flagValue(val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

// flagValue formats a config value for pflag; lists become comma separated.
func flagValue(val any) string {
	if list, ok := val.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("%v", val)
}
