// Package script replays line-oriented edit scripts against a buffer.
//
// Each line holds one command; blank lines and lines starting with '#' are
// skipped. Positions are 0-based "LINE COL" pairs and text arguments are Go
// quoted strings:
//
//	insert 0 0 "hello\n"
//	erase 0 0 0 2
//	replace 0 0 0 3 "j"
//	begin / end              open and close an undo group
//	undo / redo
//	save                     mark the current state as saved
//	mark NAME                remember the undo history position as NAME
//	undo-to / redo-to NAME   undo or redo until the history is back at NAME
//	cursor 0 1               replace the selections with one cursor
//	add 0 4                  add a cursor
//	select 0 0 0 3           replace the selections with one selection
//	type "x"                 insert at every cursor
//	delete                   erase every selection
//	left / right [extend]    move every head by one grapheme
//	print                    write the buffer content
//	status                   write line, size, timestamp and modified state
//	selections               write the selections
//	checkpoint NAME          capture the content as NAME
//	diff NAME                write a unified diff from NAME to now
//	changes TIMESTAMP        write the changes journaled after TIMESTAMP
//	set NAME VALUE           set a buffer option (VALUE is TOML-like: int, bool or quoted string)
package script
