package ui

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/souls-savior/dcx"
)

type FileName string

// FileBrowser lists the DCX files of one directory and shows the summary of the selected one.
type FileBrowser struct {
	dir     string
	files   []FileName
	cursor  int
	opts    []dcx.Option
	summary string
	err     error
}

type decodedMsg struct {
	file    FileName
	summary string
	err     error
}

func CreateFileBrowser(dir string, opts ...dcx.Option) (FileBrowser, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return FileBrowser{}, err
	}
	return FileBrowser{
		dir:   dir,
		files: files,
		opts:  opts,
	}, nil
}

// ReadDirectory returns the names of the regular files in path that end with ".dcx".
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadDirectory error reading "%s"`, path)
	}

	entries = lo.Filter(
		entries,
		func(entry fs.DirEntry, _ int) bool {
			return entry.Type().IsRegular() &&
				strings.EqualFold(filepath.Ext(entry.Name()), ".dcx")
		},
	)
	return lo.Map(
		entries,
		func(entry fs.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	), nil
}

func (s FileBrowser) decode(file FileName) tea.Cmd {
	path := filepath.Join(s.dir, string(file))
	opts := s.opts
	return func() tea.Msg {
		lhm, err := dcx.SummarizeFile(path, false, opts...)
		if err != nil {
			return decodedMsg{file: file, err: err}
		}
		bs, err := json.MarshalIndent(lhm, "", "  ")
		if err != nil {
			return decodedMsg{file: file, err: errors.Wrap(err, "FileBrowser.decode marshal error")}
		}
		return decodedMsg{file: file, summary: string(bs)}
	}
}

func (s FileBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
				s.summary, s.err = "", nil
			}
		case "down", "j":
			if s.cursor < len(s.files)-1 {
				s.cursor++
				s.summary, s.err = "", nil
			}
		case "enter":
			if len(s.files) == 0 {
				return s, nil
			}
			s.summary = ""
			s.err = nil
			return s, s.decode(s.files[s.cursor])
		}
	case decodedMsg:
		// a late result for a file that is no longer selected is dropped
		if len(s.files) == 0 || msg.file != s.files[s.cursor] {
			return s, nil
		}
		s.summary = msg.summary
		s.err = msg.err
	}
	return s, nil
}

func (s FileBrowser) View() string {
	output := "SOULS SAVIOR\n\n"
	output += "Current directory: " + s.dir + "\n\n"

	if len(s.files) == 0 {
		output += "No DCX file found here\n"
	}
	for i, file := range s.files {
		cursor := " "
		if i == s.cursor {
			cursor = ">"
		}
		output += fmt.Sprintf("%s %s\n", cursor, file)
	}

	if s.err != nil {
		output += "\nError: " + s.err.Error() + "\n"
	} else if s.summary != "" {
		output += "\n" + s.summary + "\n"
	}

	output += "\nup/down: move, enter: decode, q: quit\n"
	return output
}

func (s FileBrowser) Init() tea.Cmd {
	return nil
}
