package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	// 0 picks a seed from the clock
	Seed int64

	// Snapshot to load the starting position from
	Snapshot *BoardSnapshot
	// Whether the loaded Snapshot starts playing immediately, whatever status
	// it was saved with
	ResumeSnapshot bool

	Director Director

	// Path to directory where final snapshots of games should be saved
	SavedSnapshotsDir string

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Seed:           0,
		Snapshot:       nil,
		ResumeSnapshot: true,
		Director:       nil,
		Logger:         logrus.StandardLogger(),
	}
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) createEngine() (*Engine, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := NewEngine(seed, config.logger())
	if config.Snapshot != nil {
		if err := engine.Restore(config.Snapshot, config.ResumeSnapshot); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

// NewSession builds the engine described by the config and wraps it in a
// session ready to Run
func (config GameConfig) NewSession() (*Session, error) {
	engine, err := config.createEngine()
	if err != nil {
		return nil, err
	}

	session := NewSession(engine, config.logger())
	session.SetDirector(config.Director)
	session.OnGameEnd(config.onGameEnd)
	return session, nil
}

func (config GameConfig) onGameEnd(snapshot *BoardSnapshot) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	path, err := config.saveSnapshot(snapshot, time.Now())
	if err != nil {
		config.logger().WithError(err).Warn("Could not save snapshot")
		return
	}
	config.logger().WithField("path", path).Info("Saved snapshot")
}

func (config GameConfig) saveSnapshot(snapshot *BoardSnapshot, t time.Time) (string, error) {
	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "checking snapshots dir")
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", errors.Wrap(err, "creating snapshots dir")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path := filepath.Join(config.SavedSnapshotsDir, generateSnapshotFilename(snapshot, t))

	// TODO: prevent duplicate filenames when two games end within a second
	if err := os.WriteFile(path, []byte(snapshot.Serialize()), 0666); err != nil {
		return "", errors.Wrap(err, "writing snapshot")
	}
	return path, nil
}

func generateSnapshotFilename(snapshot *BoardSnapshot, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(fmt.Sprintf("score%d", snapshot.Score))
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
