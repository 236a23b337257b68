package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/linedit/internal/engine/buffer"
	"github.com/dshills/linedit/internal/engine/clipboard"
)

// Command represents a reversible edit over a buffer and clipboard.
//
// Execute applies the forward effect. Data the reverse effect needs is
// captured on the first successful Execute and never changes afterwards, so
// a redo replays exactly what was first done. Undo must only be called after
// a successful Execute.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	// A failed Execute leaves the buffer and clipboard unchanged.
	Execute(buf *buffer.Buffer, clip *clipboard.Clipboard) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *buffer.Buffer, clip *clipboard.Clipboard) error

	// Kind identifies the command variant.
	Kind() Kind

	// Description returns a human-readable description of the command.
	Description() string
}

// Kind tags the closed set of command variants.
type Kind uint8

const (
	KindAppend Kind = iota
	KindNewLine
	KindInsert
	KindDelete
	KindCut
	KindCopy
	KindPaste
	KindInsertReplace
	KindReplace
	KindCompound
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAppend:
		return "append"
	case KindNewLine:
		return "newline"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindCut:
		return "cut"
	case KindCopy:
		return "copy"
	case KindPaste:
		return "paste"
	case KindInsertReplace:
		return "insert-replace"
	case KindReplace:
		return "replace"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Mutating returns false for kinds that never change the buffer.
func (k Kind) Mutating() bool {
	return k != KindCopy
}

// AppendCommand adds a new last line.
type AppendCommand struct {
	Text string
}

// NewAppendCommand creates a new append command.
func NewAppendCommand(text string) *AppendCommand {
	return &AppendCommand{Text: text}
}

// Execute appends the line.
func (c *AppendCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	buf.Append(c.Text)
	return nil
}

// Undo removes the appended line.
func (c *AppendCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if _, err := buf.RemoveLast(); err != nil {
		return fmt.Errorf("undo append: %w", err)
	}
	return nil
}

// Kind returns KindAppend.
func (c *AppendCommand) Kind() Kind { return KindAppend }

// Description returns a human-readable description.
func (c *AppendCommand) Description() string {
	return "Append " + quoteShort(c.Text)
}

// NewLineCommand adds a new empty last line.
type NewLineCommand struct{}

// NewNewLineCommand creates a new newline command.
func NewNewLineCommand() *NewLineCommand {
	return &NewLineCommand{}
}

// Execute appends an empty line.
func (c *NewLineCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	buf.NewLine()
	return nil
}

// Undo removes the line added by Execute.
func (c *NewLineCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if _, err := buf.RemoveLast(); err != nil {
		return fmt.Errorf("undo newline: %w", err)
	}
	return nil
}

// Kind returns KindNewLine.
func (c *NewLineCommand) Kind() Kind { return KindNewLine }

// Description returns a human-readable description.
func (c *NewLineCommand) Description() string { return "New line" }

// InsertCommand splices text into a line.
type InsertCommand struct {
	Line  int
	Index int
	Text  string
}

// NewInsertCommand creates a new insert command.
func NewInsertCommand(line, index int, text string) *InsertCommand {
	return &InsertCommand{Line: line, Index: index, Text: text}
}

// Execute inserts the text.
func (c *InsertCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if err := buf.Insert(c.Line, c.Index, c.Text); err != nil {
		return fmt.Errorf("insert at %d:%d: %w", c.Line, c.Index, err)
	}
	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if _, err := buf.DeleteRange(c.Line, c.Index, len(c.Text)); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	return nil
}

// Kind returns KindInsert.
func (c *InsertCommand) Kind() Kind { return KindInsert }

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	return "Insert " + quoteShort(c.Text)
}

// removal is the shared state of commands that take text out of a line.
type removal struct {
	Line   int
	Index  int
	Length int

	removed  string
	captured bool
}

func (r *removal) remove(buf *buffer.Buffer, op string) (string, error) {
	text, err := buf.DeleteRange(r.Line, r.Index, r.Length)
	if err != nil {
		return "", fmt.Errorf("%s range [%d,%d) on line %d: %w", op, r.Index, r.Index+r.Length, r.Line, err)
	}
	if !r.captured {
		r.removed = text
		r.captured = true
	}
	return r.removed, nil
}

func (r *removal) restore(buf *buffer.Buffer, op string) error {
	if err := buf.Insert(r.Line, r.Index, r.removed); err != nil {
		return fmt.Errorf("undo %s: %w", op, err)
	}
	return nil
}

// Removed returns the text taken out by the first Execute.
func (r *removal) Removed() string {
	return r.removed
}

// DeleteCommand removes a range of a line.
type DeleteCommand struct {
	removal
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(line, index, length int) *DeleteCommand {
	return &DeleteCommand{removal{Line: line, Index: index, Length: length}}
}

// Execute deletes the range and remembers what was there.
func (c *DeleteCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	_, err := c.remove(buf, "delete")
	return err
}

// Undo puts the deleted text back.
func (c *DeleteCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	return c.restore(buf, "delete")
}

// Kind returns KindDelete.
func (c *DeleteCommand) Kind() Kind { return KindDelete }

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	return fmt.Sprintf("Delete %d characters", c.Length)
}

// CutCommand removes a range of a line into the clipboard.
type CutCommand struct {
	removal
}

// NewCutCommand creates a new cut command.
func NewCutCommand(line, index, length int) *CutCommand {
	return &CutCommand{removal{Line: line, Index: index, Length: length}}
}

// Execute deletes the range and stores it in the clipboard.
func (c *CutCommand) Execute(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	text, err := c.remove(buf, "cut")
	if err != nil {
		return err
	}
	clip.Set(text)
	return nil
}

// Undo puts the cut text back into the line. The clipboard keeps whatever it
// holds now.
func (c *CutCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	return c.restore(buf, "cut")
}

// Kind returns KindCut.
func (c *CutCommand) Kind() Kind { return KindCut }

// Description returns a human-readable description.
func (c *CutCommand) Description() string {
	return fmt.Sprintf("Cut %d characters", c.Length)
}

// CopyCommand reads a range of a line into the clipboard.
type CopyCommand struct {
	Line   int
	Index  int
	Length int
}

// NewCopyCommand creates a new copy command.
func NewCopyCommand(line, index, length int) *CopyCommand {
	return &CopyCommand{Line: line, Index: index, Length: length}
}

// Execute stores the range in the clipboard. The buffer is not modified.
func (c *CopyCommand) Execute(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	text, err := buf.Read(c.Line, c.Index, c.Length)
	if err != nil {
		return fmt.Errorf("copy range [%d,%d) on line %d: %w", c.Index, c.Index+c.Length, c.Line, err)
	}
	clip.Set(text)
	return nil
}

// Undo does nothing; copying has no effect on the buffer.
func (c *CopyCommand) Undo(*buffer.Buffer, *clipboard.Clipboard) error {
	return nil
}

// Kind returns KindCopy.
func (c *CopyCommand) Kind() Kind { return KindCopy }

// Description returns a human-readable description.
func (c *CopyCommand) Description() string {
	return fmt.Sprintf("Copy %d characters", c.Length)
}

// PasteCommand inserts the clipboard content into a line.
type PasteCommand struct {
	Line  int
	Index int

	pasted   string
	captured bool
}

// NewPasteCommand creates a new paste command.
func NewPasteCommand(line, index int) *PasteCommand {
	return &PasteCommand{Line: line, Index: index}
}

// Execute inserts the clipboard content as of the first execution. Later
// executions (redo) insert the same text even if the clipboard changed.
func (c *PasteCommand) Execute(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	text := c.pasted
	if !c.captured {
		text = clip.Text()
	}
	if err := buf.Insert(c.Line, c.Index, text); err != nil {
		return fmt.Errorf("paste at %d:%d: %w", c.Line, c.Index, err)
	}
	c.pasted = text
	c.captured = true
	return nil
}

// Undo removes the pasted text.
func (c *PasteCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if _, err := buf.DeleteRange(c.Line, c.Index, len(c.pasted)); err != nil {
		return fmt.Errorf("undo paste: %w", err)
	}
	return nil
}

// Pasted returns the text inserted by the first Execute.
func (c *PasteCommand) Pasted() string {
	return c.pasted
}

// Kind returns KindPaste.
func (c *PasteCommand) Kind() Kind { return KindPaste }

// Description returns a human-readable description.
func (c *PasteCommand) Description() string {
	if !c.captured {
		return "Paste"
	}
	return "Paste " + quoteShort(c.pasted)
}

// InsertReplaceCommand inserts text and undoes by restoring the whole line.
type InsertReplaceCommand struct {
	Line  int
	Index int
	Text  string

	prior    string
	captured bool
}

// NewInsertReplaceCommand creates a new insert-replace command.
func NewInsertReplaceCommand(line, index int, text string) *InsertReplaceCommand {
	return &InsertReplaceCommand{Line: line, Index: index, Text: text}
}

// Execute snapshots the line and inserts the text.
func (c *InsertReplaceCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	prior, err := buf.Get(c.Line)
	if err != nil {
		return fmt.Errorf("insert-replace at %d:%d: %w", c.Line, c.Index, err)
	}
	if err := buf.Insert(c.Line, c.Index, c.Text); err != nil {
		return fmt.Errorf("insert-replace at %d:%d: %w", c.Line, c.Index, err)
	}
	if !c.captured {
		c.prior = prior
		c.captured = true
	}
	return nil
}

// Undo restores the line as it was before the first Execute.
func (c *InsertReplaceCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if err := buf.ReplaceLine(c.Line, c.prior); err != nil {
		return fmt.Errorf("undo insert-replace: %w", err)
	}
	return nil
}

// Kind returns KindInsertReplace.
func (c *InsertReplaceCommand) Kind() Kind { return KindInsertReplace }

// Description returns a human-readable description.
func (c *InsertReplaceCommand) Description() string {
	return "Insert " + quoteShort(c.Text) + fmt.Sprintf(" into line %d", c.Line)
}

// ReplaceCommand swaps a range of a line for new text.
type ReplaceCommand struct {
	removal
	Text string
}

// NewReplaceCommand creates a new replace command.
func NewReplaceCommand(line, index, length int, text string) *ReplaceCommand {
	return &ReplaceCommand{
		removal: removal{Line: line, Index: index, Length: length},
		Text:    text,
	}
}

// Execute replaces the range.
func (c *ReplaceCommand) Execute(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	old, err := buf.ReplaceRange(c.Line, c.Index, c.Length, c.Text)
	if err != nil {
		return fmt.Errorf("replace range [%d,%d) on line %d: %w", c.Index, c.Index+c.Length, c.Line, err)
	}
	if !c.captured {
		c.removed = old
		c.captured = true
	}
	return nil
}

// Undo restores the replaced text.
func (c *ReplaceCommand) Undo(buf *buffer.Buffer, _ *clipboard.Clipboard) error {
	if _, err := buf.ReplaceRange(c.Line, c.Index, len(c.Text), c.removed); err != nil {
		return fmt.Errorf("undo replace: %w", err)
	}
	return nil
}

// Kind returns KindReplace.
func (c *ReplaceCommand) Kind() Kind { return KindReplace }

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	newLen := utf8.RuneCountInString(c.Text)
	if c.Length == 0 {
		return fmt.Sprintf("Insert %d characters", newLen)
	}
	if newLen == 0 {
		return fmt.Sprintf("Delete %d characters", c.Length)
	}
	return fmt.Sprintf("Replace %d with %d characters", c.Length, newLen)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf, clip); err != nil {
			// On error, try to undo what we've done
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf, clip)
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer, clip *clipboard.Clipboard) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf, clip); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Kind returns KindCompound.
func (c *CompoundCommand) Kind() Kind { return KindCompound }

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}

func quoteShort(s string) string {
	if utf8.RuneCountInString(s) <= 20 {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%d characters", utf8.RuneCountInString(s))
}
