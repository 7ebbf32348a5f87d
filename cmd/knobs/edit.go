package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/knobworks/knobs/internal/logger"
	"github.com/knobworks/knobs/internal/render"
	"github.com/knobworks/knobs/internal/schema"
	"github.com/knobworks/knobs/internal/session"
	"github.com/knobworks/knobs/internal/theme"
	"github.com/knobworks/knobs/internal/tui"
)

type editOptions struct {
	DocumentPath string
	Theme        string
	Verbose      bool
}

var editCmdRunner = runEdit

func newEditCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a parameter document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DocumentPath = args[0]
			opts.Theme = root.theme
			opts.Verbose = root.verbose

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			return editCmdRunner(opts, log)
		},
	}

	return cmd
}

func runEdit(opts editOptions, log *logger.Logger) error {
	if opts.Verbose {
		verboseLog, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		log = verboseLog
	}

	doc, err := schema.ParseDocument(opts.DocumentPath)
	if err != nil {
		return err
	}

	th, err := themeForName(opts.Theme)
	if err != nil {
		return err
	}

	sess := session.New(doc.Parameters, doc.Model, log)
	registry := render.NewRegistry(nil)

	model, err := tui.NewModel(doc.Name, sess, registry, th)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	form, ok := final.(tui.Model)
	if !ok || !form.Accepted() {
		fmt.Fprintln(os.Stderr, "aborted, no changes written")
		return nil
	}

	edited := form.Session().GetModel()
	out, err := yaml.Marshal(edited)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}

func themeForName(name string) (theme.Theme, error) {
	switch name {
	case "light":
		return theme.Light(), nil
	case "dark", "":
		return theme.Dark(), nil
	default:
		return theme.Theme{}, fmt.Errorf("unknown theme %q (expected light or dark)", name)
	}
}
