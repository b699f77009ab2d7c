package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/store/jsonstore"
	"github.com/idilsaglam/dieta/internal/tui"
	"github.com/idilsaglam/dieta/internal/ui"
	"github.com/idilsaglam/dieta/internal/wizard"
)

func newCreateCmd(e *env) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start the interactive wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, ok := model.ParseRoute(from)
			if !ok {
				return usageErr("create: unknown step %q (want step, create or nutrition)", from)
			}
			store, err := e.loadStore()
			if err != nil {
				return err
			}
			end, err := tui.Run(cmd.Context(), store, tui.Options{Start: start, Log: e.log})
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			if err := e.saveStore(store); err != nil {
				return err
			}
			e.log.Info("wizard closed", zap.String("route", string(end)))
			ui.OK(e.stdout, "rascunho salvo em "+e.cfg.DraftFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "step", "step to start on: step, create or nutrition")
	return cmd
}

// submit runs step 2 without the TUI, through the same validator and bridge.
func newSubmitCmd(e *env) *cobra.Command {
	var in model.CreateInput
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill step 2 (gender, objective, level) non-interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := e.loadStore()
			if err != nil {
				return err
			}
			nav := &wizard.Recorder{}
			screen := wizard.NewCreateScreen(wizard.NewBridge(store, nav, e.log))
			screen.Dispatch(wizard.FieldChanged{Field: model.FieldGender, Value: in.Gender})
			screen.Dispatch(wizard.FieldChanged{Field: model.FieldObjective, Value: in.Objective})
			screen.Dispatch(wizard.FieldChanged{Field: model.FieldLevel, Value: in.Level})
			st := screen.Dispatch(wizard.Submitted{})

			if st.Phase != wizard.Navigated {
				for _, f := range []string{model.FieldGender, model.FieldObjective, model.FieldLevel} {
					if msg, ok := st.Errors[f]; ok {
						ui.Fail(e.stderr, f+": "+msg)
					}
				}
				return &exitError{code: ExitUsage}
			}
			if err := e.saveStore(store); err != nil {
				return err
			}
			ui.OK(e.stdout, "dados salvos")
			fmt.Fprintf(e.stdout, "próximo passo: %s\n", nav.Last())
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Gender, "gender", "", "masculino or feminino")
	cmd.Flags().StringVar(&in.Objective, "objective", "", "diet objective (see `dieta options`)")
	cmd.Flags().StringVar(&in.Level, "level", "", "activity level (see `dieta options`)")
	return cmd
}

func newDraftCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect or discard the saved draft",
	}

	var asJSON bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := e.loadStore()
			if err != nil {
				return err
			}
			d := store.Snapshot()
			if asJSON {
				b, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return fmt.Errorf("json marshal: %w", err)
				}
				fmt.Fprintln(e.stdout, string(b))
				return nil
			}
			lines := append([]string{ui.TitleStyle.Render("Rascunho"), ""}, tui.SummaryLines(d)...)
			fmt.Fprintln(e.stdout, ui.Panel(lines))
			return nil
		},
	}
	show.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := jsonstore.Remove(e.cfg.DraftFile); err != nil {
				return err
			}
			e.log.Info("draft removed", zap.String("path", e.cfg.DraftFile))
			ui.OK(e.stdout, "rascunho apagado")
			return nil
		},
	}

	cmd.AddCommand(show, reset)
	return cmd
}

func newOptionsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted values for submit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := []struct {
				flag string
				opts []model.Option
			}{
				{"--gender", model.GenderOptions},
				{"--objective", model.ObjectiveOptions},
				{"--level", model.LevelOptions},
			}
			var lines []string
			for i, g := range groups {
				if i > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, ui.AccentStyle.Render(g.flag))
				for _, o := range g.opts {
					lines = append(lines, fmt.Sprintf("  %q", o.Value))
				}
			}
			fmt.Fprintln(e.stdout, strings.Join(lines, "\n"))
			return nil
		},
	}
}
