package main

import (
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/config"
	"github.com/db47h/pulsesim/internal/logging"
	"github.com/db47h/pulsesim/internal/metrics"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// session holds everything a command needs to run a simulation.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Collector
	net     *pulsesim.Network
}

func newSession(cmd *cobra.Command, args []string) (*session, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// command line flags override the configuration file
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Changed("entry") {
		cfg.Entry, _ = flags.GetString("entry")
	}
	if flags.Changed("presses") {
		cfg.Presses, _ = flags.GetInt("presses")
	}
	if flags.Changed("sink") {
		cfg.Sink, _ = flags.GetString("sink")
	}
	if flags.Changed("watch") {
		cfg.Watch, _ = flags.GetStringSlice("watch")
	}
	if flags.Changed("max-presses") {
		cfg.MaxPresses, _ = flags.GetInt("max-presses")
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg: cfg,
		log: logging.New(level, cmd.ErrOrStderr(), cfg.LogJSON),
	}
	if m, _ := flags.GetBool("metrics"); m {
		s.metrics = metrics.New()
	}

	s.net, err = readNetwork(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return nil, err
	}
	s.log.Debug("circuit loaded", "input", cfg.Input, "modules", s.net.Len(), "dangling", s.net.Dangling())
	return s, nil
}

func readNetwork(stdin io.Reader, path string) (*pulsesim.Network, error) {
	if path == "" || path == "-" {
		return pulsesim.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open circuit")
	}
	defer f.Close()
	n, err := pulsesim.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return n, nil
}

// driver returns a new driver on a copy of the session network. Metrics, if
// enabled, are labelled with mode.
func (s *session) driver(mode string) *pulsesim.Driver {
	opts := []pulsesim.DriverOption{
		pulsesim.WithEntry(s.cfg.Entry),
		pulsesim.WithLogger(s.log),
	}
	if s.metrics != nil {
		opts = append(opts, s.metrics.DriverOptions(mode)...)
	}
	return pulsesim.NewDriver(s.net.Clone(), opts...)
}

func (s *session) count() int {
	return s.driver("count").PressN(s.cfg.Presses)
}

func (s *session) cycle(cmd *cobra.Command) (int, map[string]int, error) {
	watch := s.cfg.Watch
	if len(watch) == 0 {
		var err error
		if watch, err = pulsesim.WatchSet(s.net, s.cfg.Sink); err != nil {
			return 0, nil, err
		}
	}
	return s.driver("cycle").Converge(cmd.Context(), watch, s.cfg.MaxPresses)
}

func (s *session) close(cmd *cobra.Command) error {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.WriteText(cmd.ErrOrStderr())
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
