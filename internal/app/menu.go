package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// menuItem is one numbered entry of the front end menu.
type menuItem struct {
	label string
	run   func(ctx context.Context) error
}

// menu returns the entries by number.
func (app *Application) menu() map[int]menuItem {
	return map[int]menuItem{
		1:  {"Append text", app.appendText},
		2:  {"Start a new line", app.newLine},
		3:  {"Save to file", app.save},
		4:  {"Load from file", app.load},
		5:  {"Print text", app.print},
		6:  {"Insert text", app.insert},
		7:  {"Search", app.search},
		8:  {"Clear screen", app.clearScreen},
		9:  {"Exit", app.exit},
		10: {"Delete", app.delete},
		11: {"Cut", app.cut},
		12: {"Copy", app.copy},
		13: {"Paste", app.paste},
		14: {"Insert with replacement", app.insertReplace},
		15: {"Replace", app.replace},
		16: {"Undo", app.undo},
		17: {"Redo", app.redo},
		18: {"Run script", app.runScript},
	}
}

// Run drives the menu until exit is chosen or input ends.
func (app *Application) Run(ctx context.Context) error {
	app.watchConfig(ctx)
	app.log.Info("session started")

	items := app.menu()
	for {
		if ctx.Err() != nil {
			return nil
		}
		if app.prompt {
			app.printMenu(items)
		}

		line, err := app.readLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		choice, err := strconv.Atoi(line)
		item, ok := items[choice]
		if err != nil || !ok {
			app.report(fmt.Errorf("%q: %w", line, ErrInvalidChoice))
			continue
		}

		app.log.Debug("%s", item.label)
		if err := item.run(ctx); err != nil {
			if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			app.report(err)
		}
	}
}

func (app *Application) printMenu(items map[int]menuItem) {
	fmt.Fprintln(app.out)
	for i := 1; i <= len(items); i++ {
		fmt.Fprintf(app.out, "%2d. %s\n", i, items[i].label)
	}
}

// report prints an error and keeps the session going.
func (app *Application) report(err error) {
	app.log.Warn("%v", err)
	fmt.Fprintf(app.out, "Error: %v\n", err)
}

// readLine prints prompt when prompting and reads one line without its
// terminator. A final unterminated line is returned without error.
func (app *Application) readLine(prompt string) (string, error) {
	if app.prompt {
		fmt.Fprint(app.out, prompt)
	}
	line, err := app.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInts reads one line holding exactly n integers.
func (app *Application) readInts(prompt string, n int) ([]int, error) {
	line, err := app.readLine(prompt)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d numbers, got %q: %w", n, line, ErrInvalidInput)
	}

	nums := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", f, ErrInvalidInput)
		}
		nums[i] = v
	}
	return nums, nil
}

func (app *Application) appendText(context.Context) error {
	text, err := app.readLine("Enter text to append: ")
	if err != nil {
		return err
	}
	if err := app.session.Append(text); err != nil {
		return NewOperationError("append", "", err)
	}
	return nil
}

func (app *Application) newLine(context.Context) error {
	if err := app.session.NewLine(); err != nil {
		return NewOperationError("new line", "", err)
	}
	fmt.Fprintln(app.out, "New line is started")
	return nil
}

func (app *Application) save(context.Context) error {
	path, err := app.readLine("Enter the file name for saving: ")
	if err != nil {
		return err
	}
	if err := app.session.SaveToFile(strings.TrimSpace(path)); err != nil {
		return NewOperationError("save", path, err)
	}
	app.log.Info("saved %s", app.session.Path())
	fmt.Fprintln(app.out, "Text has been saved successfully")
	return nil
}

func (app *Application) load(context.Context) error {
	path, err := app.readLine("Enter the file name for loading: ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if err := app.session.LoadFromFile(path); err != nil {
		return NewOperationError("load", path, err)
	}
	app.log.Info("loaded %s (%d lines)", path, app.session.LineCount())
	fmt.Fprintln(app.out, "Text has been loaded successfully")
	return nil
}

func (app *Application) print(context.Context) error {
	app.printLines()
	return nil
}

func (app *Application) printLines() {
	for _, line := range app.session.Lines() {
		fmt.Fprintln(app.out, line)
	}
}

func (app *Application) insert(context.Context) error {
	pos, err := app.readInts("Choose line and index: ", 2)
	if err != nil {
		return err
	}
	text, err := app.readLine("Enter text to insert: ")
	if err != nil {
		return err
	}
	if err := app.session.InsertAt(pos[0], pos[1], text); err != nil {
		return NewOperationError("insert", target(pos...), err)
	}
	return nil
}

func (app *Application) search(context.Context) error {
	needle, err := app.readLine("Enter text to search: ")
	if err != nil {
		return err
	}

	found := false
	for m := range app.session.Search(needle) {
		fmt.Fprintf(app.out, "Found on line %d, index %d\n", m.Line, m.Index)
		found = true
	}
	if !found {
		fmt.Fprintln(app.out, "Text not found")
	}
	return nil
}

func (app *Application) clearScreen(context.Context) error {
	if app.tty {
		fmt.Fprint(app.out, "\033[H\033[2J")
	}
	return nil
}

func (app *Application) exit(context.Context) error {
	if app.session.Modified() {
		app.log.Info("exiting with unsaved changes")
	}
	return ErrQuit
}

func (app *Application) delete(context.Context) error {
	r, err := app.readInts("Choose line, index and number of symbols: ", 3)
	if err != nil {
		return err
	}
	if err := app.session.DeleteRange(r[0], r[1], r[2]); err != nil {
		return NewOperationError("delete", target(r...), err)
	}
	return nil
}

func (app *Application) cut(context.Context) error {
	r, err := app.readInts("Choose line, index and number of symbols: ", 3)
	if err != nil {
		return err
	}
	if err := app.session.Cut(r[0], r[1], r[2]); err != nil {
		return NewOperationError("cut", target(r...), err)
	}
	return nil
}

func (app *Application) copy(context.Context) error {
	r, err := app.readInts("Choose line, index and number of symbols: ", 3)
	if err != nil {
		return err
	}
	if err := app.session.Copy(r[0], r[1], r[2]); err != nil {
		return NewOperationError("copy", target(r...), err)
	}
	return nil
}

func (app *Application) paste(context.Context) error {
	pos, err := app.readInts("Choose line and index: ", 2)
	if err != nil {
		return err
	}
	if err := app.session.Paste(pos[0], pos[1]); err != nil {
		return NewOperationError("paste", target(pos...), err)
	}
	return nil
}

func (app *Application) insertReplace(context.Context) error {
	pos, err := app.readInts("Choose line and index: ", 2)
	if err != nil {
		return err
	}
	text, err := app.readLine("Write text: ")
	if err != nil {
		return err
	}
	if err := app.session.InsertReplace(pos[0], pos[1], text); err != nil {
		return NewOperationError("insert-replace", target(pos...), err)
	}
	return nil
}

func (app *Application) replace(context.Context) error {
	r, err := app.readInts("Choose line, index and number of symbols: ", 3)
	if err != nil {
		return err
	}
	text, err := app.readLine("Write text: ")
	if err != nil {
		return err
	}
	if err := app.session.Replace(r[0], r[1], r[2], text); err != nil {
		return NewOperationError("replace", target(r...), err)
	}
	return nil
}

func (app *Application) undo(context.Context) error {
	info, _ := app.session.PeekUndo()
	if err := app.session.Undo(); err != nil {
		return NewOperationError("undo", "", err)
	}
	fmt.Fprintf(app.out, "Undid: %s\n", info.Description)
	return nil
}

func (app *Application) redo(context.Context) error {
	info, _ := app.session.PeekRedo()
	if err := app.session.Redo(); err != nil {
		return NewOperationError("redo", "", err)
	}
	fmt.Fprintf(app.out, "Redid: %s\n", info.Description)
	return nil
}

func (app *Application) runScript(ctx context.Context) error {
	path, err := app.readLine("Enter the script file name: ")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if err := app.runner.RunFile(ctx, path); err != nil {
		return NewOperationError("script", path, err)
	}
	app.log.Info("ran script %s", path)
	return nil
}

// target formats coordinates as "line:index[:length]".
func target(nums ...int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ":")
}
