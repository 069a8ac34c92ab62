package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	lop "github.com/samber/lo/parallel"
	"github.com/thanhnguyen2187/souls-savior/dcx"
	"github.com/thanhnguyen2187/souls-savior/ui"
)

type (
	Args struct {
		Inspect     *InspectCmd     `arg:"subcommand:inspect"`
		Extract     *ExtractCmd     `arg:"subcommand:extract"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`

		MaxUncompressedSize int64 `arg:"--max-size,env:DCX_MAX_UNCOMPRESSED_SIZE" help:"largest payload to decompress, in bytes" placeholder:"BYTES" default:"1073741824"`
	}
	InspectCmd struct {
		Files      []string `arg:"positional,required" help:"DCX files to inspect" placeholder:"FILE"`
		HeaderOnly bool     `arg:"--header-only" help:"skip decompressing the payload"`
	}
	ExtractCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"a.dcx"`
		To    string `arg:"required" help:"path to destination file" placeholder:"a.bin"`
		Force bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct {
		Dir string `help:"directory to browse" placeholder:"DIR" default:"."`
	}

	InspectResult struct {
		Path    string
		Summary *orderedmap.OrderedMap
		Err     error
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Prepare to unpack.\n",
			"A CLI utility to look inside DCX containers (FromSoftware's compressed wrapper format)",
			"and get the payload out of them.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// Inspect summarizes every path in parallel. Results keep the order of paths.
func Inspect(paths []string, headerOnly bool, opts ...dcx.Option) []InspectResult {
	return lop.Map(
		paths,
		func(path string, _ int) InspectResult {
			summary, err := dcx.SummarizeFile(path, headerOnly, opts...)
			return InspectResult{
				Path:    path,
				Summary: summary,
				Err:     err,
			}
		},
	)
}

// StartInspecting prints one JSON summary per file to w and returns how many files failed.
func StartInspecting(w io.Writer, paths []string, headerOnly bool, opts ...dcx.Option) int {
	failed := 0
	for _, result := range Inspect(paths, headerOnly, opts...) {
		if result.Err != nil {
			log.Printf("%s: %v", result.Path, result.Err)
			failed++
			continue
		}
		lhm := orderedmap.New()
		lhm.Set("path", result.Path)
		lhm.Set("header", result.Summary)
		bs, err := json.MarshalIndent(lhm, "", "  ")
		if err != nil {
			log.Printf("%s: %v", result.Path, errors.Wrap(err, "StartInspecting marshal error"))
			failed++
			continue
		}
		fmt.Fprintln(w, string(bs))
	}
	return failed
}

var (
	ErrSourceMissing      = errors.New("source file does not exist")
	ErrDestinationExisted = errors.New("destination file existed, type the command again with --force to allow overwriting")
)

func StartExtracting(from string, to string, force bool, opts ...dcx.Option) error {
	if !CheckExistence(from) {
		return ErrSourceMissing
	}
	if CheckExistence(to) && !force {
		return ErrDestinationExisted
	}

	_, out, err := dcx.ReadFile(from, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(to, out, 0644); err != nil {
		return errors.Wrapf(err, `StartExtracting error writing to "%s"`, to)
	}
	return nil
}

func Start() {
	log.SetFlags(0)

	args := Args{}
	p := arg.MustParse(&args)
	opts := []dcx.Option{dcx.WithMaxUncompressedSize(args.MaxUncompressedSize)}

	switch {
	case args.Inspect != nil:
		failed := StartInspecting(os.Stdout, args.Inspect.Files, args.Inspect.HeaderOnly, opts...)
		if failed > 0 {
			os.Exit(1)
		}
	case args.Extract != nil:
		err := StartExtracting(args.Extract.From, args.Extract.To, args.Extract.Force, opts...)
		if errors.Is(err, ErrDestinationExisted) {
			println("Explicit --force is needed to make sure that you paid attention not to overwriting an existing file.")
		}
		if err != nil {
			log.Fatal(err)
		}
		println("Done extracting. Please check your result file at: " + args.Extract.To)
	case args.Interactive != nil:
		if err := ui.Start(args.Interactive.Dir, opts...); err != nil {
			log.Fatal(err)
		}
	default:
		p.WriteHelp(os.Stdout)
	}
}
