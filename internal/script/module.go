package script

import (
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linedit/internal/engine"
)

// edModule implements the ed table.
type edModule struct {
	session *engine.Session

	// failure is the Session error behind the last raised Lua error and
	// raised the message it was raised with.
	failure error
	raised  string
}

// register installs the ed table as a global.
func (m *edModule) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "append", L.NewFunction(m.append))
	L.SetField(mod, "newline", L.NewFunction(m.newline))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "cut", L.NewFunction(m.cut))
	L.SetField(mod, "copy", L.NewFunction(m.copy))
	L.SetField(mod, "paste", L.NewFunction(m.paste))
	L.SetField(mod, "insert_replace", L.NewFunction(m.insertReplace))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "search", L.NewFunction(m.search))
	L.SetField(mod, "lines", L.NewFunction(m.lines))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))
	L.SetField(mod, "clipboard", L.NewFunction(m.clipboard))

	L.SetGlobal("ed", mod)
}

// check raises a Lua error for a failed Session call.
func (m *edModule) check(L *lua.LState, op string, err error) {
	m.failure, m.raised = nil, ""
	if err == nil {
		return
	}
	m.failure = err
	m.raised = fmt.Sprintf("%s: %v", op, err)
	L.RaiseError("%s", m.raised)
}

// cause returns the Session error behind err, or nil if err was not raised
// by the last failed ed call. An error caught by pcall and followed by an
// unrelated one is not reported as the Session error.
func (m *edModule) cause(err error) error {
	if m.failure == nil {
		return nil
	}
	var apiErr *lua.ApiError
	if !errors.As(err, &apiErr) || apiErr.Object == nil {
		return nil
	}
	if !strings.HasSuffix(apiErr.Object.String(), m.raised) {
		return nil
	}
	return m.failure
}

// append(text)
func (m *edModule) append(L *lua.LState) int {
	m.check(L, "append", m.session.Append(L.CheckString(1)))
	return 0
}

// newline()
func (m *edModule) newline(L *lua.LState) int {
	m.check(L, "newline", m.session.NewLine())
	return 0
}

// get(line) -> string
func (m *edModule) get(L *lua.LState) int {
	text, err := m.session.Get(L.CheckInt(1))
	m.check(L, "get", err)
	L.Push(lua.LString(text))
	return 1
}

// insert(line, index, text)
func (m *edModule) insert(L *lua.LState) int {
	m.check(L, "insert", m.session.InsertAt(L.CheckInt(1), L.CheckInt(2), L.CheckString(3)))
	return 0
}

// delete(line, index, length)
func (m *edModule) delete(L *lua.LState) int {
	m.check(L, "delete", m.session.DeleteRange(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)))
	return 0
}

// cut(line, index, length)
func (m *edModule) cut(L *lua.LState) int {
	m.check(L, "cut", m.session.Cut(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)))
	return 0
}

// copy(line, index, length)
func (m *edModule) copy(L *lua.LState) int {
	m.check(L, "copy", m.session.Copy(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)))
	return 0
}

// paste(line, index)
func (m *edModule) paste(L *lua.LState) int {
	m.check(L, "paste", m.session.Paste(L.CheckInt(1), L.CheckInt(2)))
	return 0
}

// insert_replace(line, index, text)
func (m *edModule) insertReplace(L *lua.LState) int {
	m.check(L, "insert_replace", m.session.InsertReplace(L.CheckInt(1), L.CheckInt(2), L.CheckString(3)))
	return 0
}

// replace(line, index, length, text)
func (m *edModule) replace(L *lua.LState) int {
	m.check(L, "replace", m.session.Replace(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckString(4)))
	return 0
}

// undo() retracts the script's own last edit.
func (m *edModule) undo(L *lua.LState) int {
	m.check(L, "undo", m.session.Undo())
	return 0
}

// redo()
func (m *edModule) redo(L *lua.LState) int {
	m.check(L, "redo", m.session.Redo())
	return 0
}

// search(needle) -> {{line=, index=}, ...}
func (m *edModule) search(L *lua.LState) int {
	result := L.NewTable()
	for match := range m.session.Search(L.CheckString(1)) {
		t := L.NewTable()
		t.RawSetString("line", lua.LNumber(match.Line))
		t.RawSetString("index", lua.LNumber(match.Index))
		result.Append(t)
	}
	L.Push(result)
	return 1
}

// lines() -> {string, ...}
func (m *edModule) lines(L *lua.LState) int {
	result := L.NewTable()
	for _, line := range m.session.Lines() {
		result.Append(lua.LString(line))
	}
	L.Push(result)
	return 1
}

// line_count() -> number
func (m *edModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.session.LineCount()))
	return 1
}

// clipboard() -> string
func (m *edModule) clipboard(L *lua.LState) int {
	L.Push(lua.LString(m.session.ClipboardText()))
	return 1
}
