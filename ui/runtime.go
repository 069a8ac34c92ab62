package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/souls-savior/dcx"
)

func Start(dir string, opts ...dcx.Option) error {
	browser, err := CreateFileBrowser(dir, opts...)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "Start run program error")
	}
	return nil
}
