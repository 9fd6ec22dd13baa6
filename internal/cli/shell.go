package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/filter"
	"github.com/krakozavr/Inventory/internal/view"
)

const shellHelp = `Commands:
  search <text>        set the search text (no text clears it)
  category <name>      set the category (clears the subcategory)
  subcategory <name>   set the subcategory
  gender <M|W|U>       set the gender segment
  stock <bucket>       set the stock bucket (in-stock|low|out)
  reset                clear every filter
  sort <column>        sort by column; again to reverse
  page <n>             go to page n
  next, prev           move one page
  size <n>             set the page size
  select <sku>         show the detail of a record
  clear                clear the selection
  view                 print the current page
  stats                print the counters
  options [category]   list categories, or subcategories of a category
  help                 print this help
  quit                 leave the shell`

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse interactively with line commands",
		Long: `Read browsing commands from standard input, one per line, and print
the resulting view after each one. Blank lines and lines starting with #
are ignored. A rejected command (for example a page that does not exist)
is reported and leaves the view unchanged.

With --format json every view and error is written as one JSON line.

` + shellHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}

	return cmd
}

// shell applies line commands to one controller.
type shell struct {
	ds        *dataset.Dataset
	ctrl      *view.Controller
	formatter *OutputFormatter
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ds, err := loadDataset(cmd.Context(), opts, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return reportLoadError(formatter, err)
	}
	ctrl, err := opts.newController(cmd, ds)
	if err != nil {
		return formatter.Fail(ExitCommandError, viewErrorCode(err), err)
	}

	sh := &shell{ds: ds, ctrl: ctrl, formatter: formatter}
	if err := sh.printView(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := sh.exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			if outErr := sh.reject(err); outErr != nil {
				return outErr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeScanError, fmt.Errorf("failed to read commands: %w", err))
	}
	return nil
}

// exec runs one command line. Rejections are returned as errors and
// leave the controller unchanged.
func (s *shell) exec(line string) error {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "search":
		return s.filter(filter.Patch{}.WithSearch(arg))
	case "category":
		return s.filter(filter.Patch{}.WithCategory(arg))
	case "subcategory":
		return s.filter(filter.Patch{}.WithSubcategory(arg))
	case "gender":
		var g catalog.Gender
		if arg != "" {
			parsed, err := parseGender(arg)
			if err != nil {
				return err
			}
			g = parsed
		}
		return s.filter(filter.Patch{}.WithGender(g))
	case "stock":
		level, err := catalog.ParseStockLevel(arg)
		if err != nil {
			return err
		}
		return s.filter(filter.Patch{}.WithStock(level))
	case "reset":
		s.ctrl.ResetFilters()
		return s.printView()
	case "sort":
		col, err := catalog.ParseColumn(arg)
		if err != nil {
			return err
		}
		s.ctrl.SetSort(col)
		return s.printView()
	case "page":
		n, err := parseNumber("page", arg)
		if err != nil {
			return err
		}
		return s.navigate(s.ctrl.SetPage(n))
	case "next":
		return s.navigate(s.ctrl.NextPage())
	case "prev":
		return s.navigate(s.ctrl.PrevPage())
	case "size":
		n, err := parseNumber("size", arg)
		if err != nil {
			return err
		}
		return s.navigate(s.ctrl.SetPageSize(n))
	case "select":
		if err := s.ctrl.SelectRecord(arg); err != nil {
			return err
		}
		detail, _ := s.ctrl.Detail()
		return s.formatter.SessionSuccess(s.ctrl.Session(), newDetailResult(detail))
	case "clear":
		s.ctrl.ClearSelection()
		return s.printView()
	case "view":
		return s.printView()
	case "stats":
		return s.formatter.SessionSuccess(s.ctrl.Session(), StatsResult{
			Filter: s.ctrl.State().Filter,
			Stats:  s.ctrl.Stats(),
		})
	case "options":
		return s.options(arg)
	case "help":
		return s.formatter.Success(shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
}

func (s *shell) filter(p filter.Patch) error {
	s.ctrl.SetFilter(p)
	return s.printView()
}

func (s *shell) navigate(err error) error {
	if err != nil {
		return err
	}
	return s.printView()
}

func (s *shell) options(category string) error {
	var result OptionsResult
	if category == "" {
		// Show the subcategories of the active category, like the dropdown.
		category = s.ctrl.State().Filter.Category
	}
	if category == "" {
		result = OptionsResult{Field: "category", Values: s.ds.Categories()}
	} else {
		result = OptionsResult{Field: "subcategory", Category: category, Values: s.ds.Subcategories(category)}
	}
	if result.Values == nil {
		result.Values = []string{}
	}
	return s.formatter.Success(result)
}

func (s *shell) printView() error {
	return s.formatter.SessionSuccess(s.ctrl.Session(), newBrowseResult(s.ctrl, ""))
}

// reject reports a rejected command without ending the session.
func (s *shell) reject(err error) error {
	code := ErrCodeInvalidFlag
	var verr *view.Error
	if errors.As(err, &verr) {
		code = viewErrorCode(err)
	}

	if s.formatter.Format == "json" {
		return s.formatter.Error(code, err.Error(), nil)
	}
	_, outErr := fmt.Fprintf(s.formatter.Writer, "! %s\n", err)
	return outErr
}

func parseNumber(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", name, arg)
	}
	return n, nil
}
