package engine

import (
	"errors"
	"fmt"
	"invsearch/pkg/indexer"
	"invsearch/pkg/utils/sys"
	"io"
	"os"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

const maxWordSuggestions = 20

var commandSuggestions = []prompt.Suggest{
	{Text: "create", Description: "Build the database from the input files"},
	{Text: "display", Description: "Show the whole database"},
	{Text: "search", Description: "search <word>: files containing a word"},
	{Text: "save", Description: "save [overwrite|append|as <file>]"},
	{Text: "update", Description: "update [file]: load a saved database"},
	{Text: "top", Description: "top [n]: most frequent words"},
	{Text: "stats", Description: "Database statistics"},
	{Text: "files", Description: "Input files"},
	{Text: "help", Description: "List commands"},
	{Text: "exit", Description: "Close the input files and quit"},
}

var saveSuggestions = []prompt.Suggest{
	{Text: "overwrite", Description: "Replace the default save file"},
	{Text: "append", Description: "Append to the default save file"},
	{Text: "as", Description: "as <file>: save to another file"},
}

// menu numbers kept from the numbered main menu
var menuAliases = map[string]string{
	"1": "create",
	"2": "display",
	"3": "search",
	"4": "save",
	"5": "update",
	"6": "exit",
}

// Run reads commands interactively until exit.
func (eg *Engine) Run() {
	exit := false
	executor := func(in string) {
		if !eg.Execute(os.Stdout, in) {
			exit = true
		}
	}
	exitChecker := func(in string, breakline bool) bool {
		return exit && breakline
	}

	p := prompt.New(
		executor,
		eg.complete,
		prompt.OptionTitle("invsearch"),
		prompt.OptionPrefix(eg.cfg.Prompt),
		prompt.OptionMaxSuggestion(maxWordSuggestions),
		prompt.OptionSetExitCheckerOnInput(exitChecker),
	)
	p.Run()
}

func (eg *Engine) complete(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	fields := strings.Fields(before)
	if len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(before, " ")) {
		return prompt.FilterHasPrefix(commandSuggestions, d.GetWordBeforeCursor(), true)
	}

	switch command(fields[0]) {
	case "search":
		return eg.wordSuggestions(d.GetWordBeforeCursor())
	case "save":
		if len(fields) == 1 || (len(fields) == 2 && !strings.HasSuffix(before, " ")) {
			return prompt.FilterHasPrefix(saveSuggestions, d.GetWordBeforeCursor(), true)
		}
	}
	return nil
}

func (eg *Engine) wordSuggestions(prefix string) []prompt.Suggest {
	if prefix == "" {
		return nil
	}
	suggestions := []prompt.Suggest{}
	for _, view := range eg.table.All() {
		if !strings.HasPrefix(view.Word, prefix) {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{
			Text:        view.Word,
			Description: fmt.Sprintf("%d file%s", view.FileCount, plural(view.FileCount)),
		})
		if len(suggestions) == maxWordSuggestions {
			break
		}
	}
	return suggestions
}

func command(name string) string {
	name = strings.ToLower(name)
	if alias, ok := menuAliases[name]; ok {
		return alias
	}
	return name
}

// Execute runs one command line, writing its output to w. It returns false
// when the session should end.
func (eg *Engine) Execute(w io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	args := fields[1:]

	switch command(fields[0]) {
	case "create":
		eg.runCreate(w)
	case "display":
		DisplayTable(w, eg.table)
	case "search":
		eg.runSearch(w, args)
	case "save":
		eg.runSave(w, args)
	case "update", "load":
		eg.runUpdate(w, args)
	case "top":
		eg.runTop(w, args)
	case "stats":
		DisplayStats(w, eg.table.Stats())
	case "files":
		files := eg.Files()
		if len(files) == 0 {
			fmt.Fprintln(w, "No input files.")
			break
		}
		fmt.Fprintf(w, "Files in the list: %s\n", strings.Join(files.Names(), " "))
	case "help":
		for _, s := range commandSuggestions {
			fmt.Fprintf(w, "  %-8s %s\n", s.Text, s.Description)
		}
	case "exit", "quit":
		if err := eg.Close(); err != nil {
			fmt.Fprintf(w, "Failed to close input files: %v\n", err)
		} else {
			fmt.Fprintln(w, "All files closed successfully.")
		}
		fmt.Fprintln(w, "Exiting Inverted Search. Goodbye!")
		return false
	default:
		fmt.Fprintf(w, "Invalid option %q, type help for the list of commands.\n", fields[0])
	}
	return true
}

func (eg *Engine) runCreate(w io.Writer) {
	report, err := eg.Create()
	if errors.Is(err, ErrAlreadyCreated) {
		fmt.Fprintln(w, "Database already exists.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "Database creation failed: %v\n", err)
		return
	}
	for _, name := range report.Skipped {
		fmt.Fprintf(w, "'%s' already present in database. Skipped.\n", name)
	}
	fmt.Fprintf(w, "Database creation successful: %d file%s indexed.\n", len(report.Indexed), plural(len(report.Indexed)))
}

func (eg *Engine) runSearch(w io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(w, "Usage: search <word>")
		return
	}
	for _, word := range args {
		view, err := eg.Search(word)
		if errors.Is(err, indexer.ErrNotFound) {
			fmt.Fprintf(w, "Word '%s' not found in the database.\n", word)
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "Search failed: %v\n", err)
			continue
		}
		DisplaySearch(w, view)
	}
}

func (eg *Engine) runSave(w io.Writer, args []string) {
	var name string
	mode := SaveCreate
	if len(args) > 0 {
		if strings.ToLower(args[0]) == "as" {
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: save as <file>")
				return
			}
			name, mode = args[1], SaveOverwrite
		} else {
			m, err := ParseSaveMode(args[0])
			if err != nil {
				fmt.Fprintln(w, "Usage: save [overwrite|append|as <file>]")
				return
			}
			mode = m
		}
	}

	path, records, err := eg.Save(name, mode)
	switch {
	case errors.Is(err, ErrNoDatabase):
		fmt.Fprintln(w, "No database to save. Create one first.")
	case errors.Is(err, ErrNothingToSave):
		fmt.Fprintln(w, "No database data to save.")
	case errors.Is(err, ErrSaveFileExists):
		fmt.Fprintf(w, "Save file '%s' already exists. Use save overwrite, save append or save as <file>.\n", eg.cfg.SaveFile)
	case err != nil:
		fmt.Fprintf(w, "Could not save database: %v\n", err)
	case mode == SaveAppend:
		fmt.Fprintf(w, "Database successfully appended to '%s' (%d records).\n", path, records)
	default:
		fmt.Fprintf(w, "Database successfully saved to '%s' (%d records).\n", path, records)
	}
}

func (eg *Engine) runUpdate(w io.Writer, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	report, err := eg.Update(name)
	switch {
	case errors.Is(err, ErrAlreadyLoaded):
		fmt.Fprintln(w, "Update database already done.")
	case sys.IsNotExist(err):
		fmt.Fprintln(w, "Save file not found.")
	case errors.Is(err, indexer.ErrEmptyInput):
		fmt.Fprintln(w, "Save file is empty. Nothing to load.")
	case err != nil:
		fmt.Fprintf(w, "Could not load database: %v\n", err)
	default:
		fmt.Fprintf(w, "Database successfully loaded: %d records, %d malformed.\n", report.Records, report.Malformed)
	}
}

func (eg *Engine) runTop(w io.Writer, args []string) {
	n := 0
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			fmt.Fprintln(w, "Usage: top [n]")
			return
		}
		n = v
	}
	DisplayTop(w, eg.Top(n))
}
