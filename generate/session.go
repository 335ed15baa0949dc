// Package generate drives the full pipeline: load the environment
// documents, validate cross-environment consistency, collect values,
// synthesize the interface body, and emit the declaration file behind a
// content-hash change-detection gate.
package generate

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/confgen/confgen/conf"
	"github.com/confgen/confgen/declaration"
	"github.com/confgen/confgen/errors"
	"github.com/confgen/confgen/loader"
	"github.com/confgen/confgen/logger"
	"github.com/confgen/confgen/schema"
)

// Options configures a generation session.
type Options struct {
	// ConfigDir is the directory holding the per-environment documents.
	ConfigDir string

	// OutputPath is where the declaration is written.
	OutputPath string

	// Module is the module identity the declaration augments.
	// Empty uses declaration.DefaultModule.
	Module string

	// SourceLabel overrides the "Generated from:" header line.
	// Empty uses ConfigDir.
	SourceLabel string

	// IncludeHash embeds the content hash in the declaration header,
	// enabling the change-detection gate on the next run.
	IncludeHash bool

	// Progress receives generation milestones. Nil discards them.
	Progress ProgressEmitter
}

// Session owns one generation lifecycle. It replaces ambient global state
// with an explicit, caller-owned object: the once-per-session flag lives
// here, so tests construct a fresh session instead of resetting globals.
type Session struct {
	ID        uuid.UUID
	opts      Options
	progress  ProgressEmitter
	generated bool
}

// Result describes the outcome of one Generate call.
type Result struct {
	Skipped      bool     `json:"skipped"`
	Reason       string   `json:"reason,omitempty"`
	OutputPath   string   `json:"output_path"`
	Hash         string   `json:"hash,omitempty"`
	Environments []string `json:"environments,omitempty"`
}

// NewSession creates a generation session for the given options.
func NewSession(opts Options) *Session {
	progress := opts.Progress
	if progress == nil {
		progress = NopEmitter{}
	}
	return &Session{
		ID:       uuid.New(),
		opts:     opts,
		progress: progress,
	}
}

// FromConfig builds session options from the resolved tool configuration.
func FromConfig(cfg *conf.Config, progress ProgressEmitter) Options {
	return Options{
		ConfigDir:   cfg.ConfigDir,
		OutputPath:  cfg.Output.Path,
		Module:      cfg.Declaration.Module,
		SourceLabel: cfg.Declaration.SourceLabel,
		IncludeHash: cfg.Declaration.IncludeHash,
		Progress:    progress,
	}
}

// Generate runs the pipeline once. When force is false, generation is
// skipped if this session already generated, or if the content hash of the
// input documents matches the hash embedded in the existing output. A
// structural inconsistency between environments aborts with an error
// carrying every diagnostic; nothing is written in that case.
func (s *Session) Generate(force bool) (*Result, error) {
	log := logger.Logger.With(logger.FieldSessionID, s.ID.String())

	files, err := loader.EligibleFiles(s.opts.ConfigDir)
	if err != nil {
		s.progress.EmitError("loading", err)
		return nil, err
	}

	hash, err := declaration.HashFiles(files)
	if err != nil {
		s.progress.EmitError("hashing", err)
		return nil, err
	}

	if !force {
		if s.generated {
			s.progress.EmitSkipped(s.opts.OutputPath, "already generated this session")
			return &Result{Skipped: true, Reason: "already generated this session", OutputPath: s.opts.OutputPath, Hash: hash}, nil
		}
		if !declaration.ShouldRegenerate(hash, s.opts.OutputPath) {
			log.Debugw("Declaration hash unchanged, skipping generation",
				logger.FieldHash, hash,
				logger.FieldOutputPath, s.opts.OutputPath)
			s.progress.EmitSkipped(s.opts.OutputPath, "input hash unchanged")
			return &Result{Skipped: true, Reason: "input hash unchanged", OutputPath: s.opts.OutputPath, Hash: hash}, nil
		}
	}

	s.progress.EmitStage("load", s.opts.ConfigDir)
	envs, err := loader.LoadDir(s.opts.ConfigDir)
	if err != nil {
		s.progress.EmitError("loading", err)
		return nil, err
	}

	report := schema.Validate(envs, true)
	if !report.Valid {
		err := errors.NewInconsistencyError(report.Diagnostics)
		log.Errorw("Environment documents are structurally inconsistent",
			logger.FieldCount, len(report.Diagnostics))
		s.progress.EmitError("validation", err)
		return nil, err
	}

	values := schema.Collect(envs)
	// depth 1: the body nests inside the `declare module` block.
	body := schema.Synthesize(envs, values, 1)

	label := s.opts.SourceLabel
	if label == "" {
		label = s.opts.ConfigDir
	}
	embedded := ""
	if s.opts.IncludeHash {
		embedded = hash
	}
	content := declaration.Emit(body, label, s.opts.Module, embedded)

	if err := writeFileAtomic(s.opts.OutputPath, []byte(content)); err != nil {
		s.progress.EmitError("writing", err)
		return nil, err
	}
	s.generated = true

	environments := envs.Names()
	log.Infow("Generated declaration",
		logger.FieldOutputPath, s.opts.OutputPath,
		logger.FieldEnvironments, environments,
		logger.FieldHash, hash)
	s.progress.EmitWritten(s.opts.OutputPath, environments, embedded)

	return &Result{
		OutputPath:   s.opts.OutputPath,
		Hash:         hash,
		Environments: environments,
	}, nil
}

// writeFileAtomic writes via a temp file in the target directory plus
// rename, so a crash never leaves a half-written declaration behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, conf.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, conf.DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to move declaration into place at %s", path)
	}
	return nil
}
