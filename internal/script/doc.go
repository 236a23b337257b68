// Package script runs Lua batch edits against an engine.Session.
//
// A script sees a sandboxed gopher-lua state: the base, table, string and
// math libraries only, with dofile, loadfile, load, loadstring and require
// removed. Edits go through a global "ed" table whose functions mirror the
// Session API with the same 0-based line and index arguments:
//
//	ed.append("hello")
//	ed.insert(0, 5, " world")
//	for _, m in ipairs(ed.search("o")) do
//	    print(m.line, m.index)
//	end
//
// A whole run is one Session transaction. On success it is a single undo
// entry; on any Lua error, or a failing ed call, every edit the script made
// is rolled back and the failure is returned as *Error.
package script
