package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/dieta/internal/config"
	"github.com/idilsaglam/dieta/internal/draft"
	"github.com/idilsaglam/dieta/internal/logging"
	"github.com/idilsaglam/dieta/internal/store/jsonstore"
	"github.com/idilsaglam/dieta/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage or invalid input.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// exitError carries an exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}
func (e *exitError) Unwrap() error { return e.err }

func usageErr(format string, a ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, a...)}
}

// env is what every subcommand gets after the root pre-run.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// loadStore restores the saved draft into a fresh store.
func (e *env) loadStore() (*draft.Store, error) {
	d, err := jsonstore.Load(e.cfg.DraftFile)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	s := draft.New()
	if d.ID != "" {
		s.Restore(d)
	}
	return s, nil
}

func (e *env) saveStore(s *draft.Store) error {
	if err := jsonstore.Save(e.cfg.DraftFile, s.Snapshot()); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Run builds the command tree, executes args and returns an exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = e.log.Sync()
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			ui.Fail(stderr, ee.Error())
		}
		return ee.code
	}
	ui.Fail(stderr, err.Error())
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(e *env) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	root := &cobra.Command{
		Use:   "dieta",
		Short: "dieta - monte sua dieta passo a passo",
		Long: `dieta collects the data for a personalized diet plan in a short wizard:
personal data, then gender, objective and activity level.

Run "dieta create" to start the interactive wizard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				configPath = p
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ui.SetTheme(cfg.Theme)
			log, err := logging.New(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			e.log.Debug("config loaded",
				zap.String("path", configPath),
				zap.String("draft_file", cfg.DraftFile),
				zap.String("command", cmd.CommandPath()))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: ExitUsage, err: err}
	})
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.dieta/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newCreateCmd(e),
		newSubmitCmd(e),
		newDraftCmd(e),
		newOptionsCmd(e),
	)
	return root
}
