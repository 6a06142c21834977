package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"

	directorNone   = "none"
	directorGreedy = "greedy"
	directorRandom = "random"
)

// options collects everything settable from flags or the config file
type options struct {
	Frontend          string `yaml:"frontend"`
	Director          string `yaml:"director"`
	Seed              int64  `yaml:"seed"`
	Snapshot          string `yaml:"snapshot"`
	SavedSnapshotsDir string `yaml:"save_snapshots"`
	LogLevel          string `yaml:"log_level"`
	LogFile           string `yaml:"log_file"`
	Mute              bool   `yaml:"mute"`

	configPath string
}

func loadOptionsFile(path string) (options, error) {
	var file options

	content, err := os.ReadFile(path)
	if err != nil {
		return file, errors.Wrap(err, "reading config file")
	}
	if err := yaml.UnmarshalStrict(content, &file); err != nil {
		return file, errors.Wrapf(err, "parsing config file %s", path)
	}
	return file, nil
}

// merge copies values from the config file for every flag left unset on
// the command line
func (opts *options) merge(cmd *cobra.Command, file options) error {
	flags := cmd.Flags()
	if !flags.Changed("frontend") && file.Frontend != "" {
		if err := flags.Set("frontend", file.Frontend); err != nil {
			return errors.Wrap(err, "config file")
		}
	}
	if !flags.Changed("director") && file.Director != "" {
		if err := flags.Set("director", file.Director); err != nil {
			return errors.Wrap(err, "config file")
		}
	}
	if !flags.Changed("seed") && file.Seed != 0 {
		opts.Seed = file.Seed
	}
	if !flags.Changed("snapshot") && file.Snapshot != "" {
		opts.Snapshot = file.Snapshot
	}
	if !flags.Changed("save-snapshots") && file.SavedSnapshotsDir != "" {
		opts.SavedSnapshotsDir = file.SavedSnapshotsDir
	}
	if !flags.Changed("log-level") && file.LogLevel != "" {
		opts.LogLevel = file.LogLevel
	}
	if !flags.Changed("log-file") && file.LogFile != "" {
		opts.LogFile = file.LogFile
	}
	if !flags.Changed("mute") && file.Mute {
		opts.Mute = true
	}
	return nil
}
