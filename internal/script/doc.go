// Package script embeds a Lua interpreter for driving the canvas
// engine from scene scripts.
//
// Scripts see a single global "canvas" table whose functions mirror
// the engine's flat numeric surface: object ids, coordinates, and
// sizes cross the boundary as plain Lua numbers, so a script never
// holds a reference into engine state.
//
// # Sandboxing
//
// Only the base, table, string, and math standard libraries are
// opened. Scripts cannot reach the file system, spawn processes, or
// load native code.
//
// # Example
//
//	r := script.NewRunner(eng)
//	defer r.Close()
//	err := r.DoString(`
//	    canvas.create(800, 600, 25)
//	    local id = canvas.add(10, 10, 50, 50, 0, 0)
//	    canvas.move(id, 100, 100)
//	`)
package script
