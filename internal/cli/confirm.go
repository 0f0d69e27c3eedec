package cli

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/listkeeper/internal/controller"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !ui.IsTerminal(os.Stdout) {
		form = form.WithAccessible(true)
	}
	return form
}

// confirmer asks before deleting text. A prompt that cannot run (no input,
// interrupted) counts as no.
func (app *App) confirmer(cmd *cobra.Command, text string) controller.Confirmer {
	if app.confirm != nil {
		return app.confirm(cmd, text)
	}
	return controller.ConfirmFunc(func(prompt string) bool {
		ok := false
		form := newForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(prompt).
					Description(ui.Truncate(ui.Sanitize(text), 60)).
					Affirmative("Delete").
					Negative("Cancel").
					Value(&ok),
			),
		)
		if err := form.Run(); err != nil {
			app.log.Debug("confirm prompt aborted", "err", err)
			return false
		}
		return ok
	})
}
