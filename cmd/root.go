package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosnake/audio"
	"github.com/they4kman/gosnake/director/greedy"
	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/term"
	"github.com/they4kman/gosnake/window"
)

var opts options

var rootCmd = &cobra.Command{
	Use:   "gosnake",
	Short: "Play Snake in a window or a terminal",
	Long: `gosnake is a Snake game which supports human- or
computer-driven playing.

Run with no arguments to play in a window
	gosnake

Play in the terminal instead
	gosnake --frontend terminal

Use the director flag to make the computer play for you
	gosnake --director greedy
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.configPath != "" {
			file, err := loadOptionsFile(opts.configPath)
			if err != nil {
				return err
			}
			if err := opts.merge(cmd, file); err != nil {
				return err
			}
		}
		return run(opts)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(opts options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	switch {
	case opts.LogFile != "":
		file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		log.SetOutput(file)
		return log, file, nil
	case opts.Frontend == frontendTerminal:
		// Anything written to stderr would tear the terminal display
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, nil, nil
}

func newDirector(name string, seed int64, log logrus.FieldLogger) game.Director {
	switch name {
	case directorGreedy:
		return greedy.New(log.WithField("director", name))
	case directorRandom:
		return random.New(seed)
	default:
		return nil
	}
}

func loadSnapshotFile(path string) (*game.BoardSnapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	return game.LoadSnapshot(string(content))
}

func run(opts options) error {
	log, logFile, err := newLogger(opts)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("Starting gosnake")

	gameConfig := game.NewGameConfig()
	gameConfig.Seed = seed
	gameConfig.SavedSnapshotsDir = opts.SavedSnapshotsDir
	gameConfig.Logger = log
	gameConfig.Director = newDirector(opts.Director, seed, log)

	if opts.Snapshot != "" {
		if gameConfig.Snapshot, err = loadSnapshotFile(opts.Snapshot); err != nil {
			return err
		}
	}

	session, err := gameConfig.NewSession()
	if err != nil {
		return err
	}

	if !opts.Mute {
		sounds := audio.NewSoundManager(log)
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.WithError(err).Warn("Audio initialization failed")
		} else {
			defer sounds.Cleanup()
			session.OnTick(sounds.OnTick)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := session.Run(ctx); err != nil {
			log.WithError(err).Error("Session stopped")
		}
	}()

	switch opts.Frontend {
	case frontendTerminal:
		err = term.Run(ctx, session)
	default:
		pixelgl.Run(func() {
			err = window.Run(session)
		})
	}

	cancel()
	<-done
	return err
}

func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.Var(newChoiceValue(frontendWindow, &opts.Frontend, "frontend", frontendWindow, frontendTerminal),
		"frontend", `Where to draw the game.
window: a desktop window (arrows/WASD, drag the mouse to swipe)
terminal: the current terminal (arrows/WASD, q to quit)`)
	flags.VarP(newChoiceValue(directorNone, &opts.Director, "director", directorNone, directorGreedy, directorRandom),
		"director", "d", `Make the computer steer.
none: you play
greedy: heads straight for the food
random: wanders without crashing when it can help it`)
	flags.Int64VarP(&opts.Seed, "seed", "s", 0, "Seed for food placement (0 picks one from the clock)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with default values for these flags")
	flags.StringVar(&opts.Snapshot, "snapshot", "", "Start from a snapshot saved with --save-snapshots")
	flags.StringVar(&opts.SavedSnapshotsDir, "save-snapshots", "", "Directory to save the final position of every game to")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&opts.Mute, "mute", false, "Disable sound effects")
}

func init() {
	bindFlags(rootCmd, &opts)
}
