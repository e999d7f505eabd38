// Package script runs Lua scripts against an editor store.
//
// A State is a sandboxed gopher-lua interpreter with only the base, table,
// string and math libraries opened and the file and chunk loaders removed.
// Modules register global tables into it; EditorModule exposes the store
// as the "editor" table:
//
//	local id = editor.add("email-input", 100, 40)
//	editor.update(id, { label = "Work email", required = true })
//	editor.add_step("Details")
//	editor.undo()
//
// Step and order indices are 1-based on the Lua side. Store misuse (an
// unknown id, removing the last step) is absorbed the way the store
// absorbs it; bad argument types raise Lua errors.
package script
