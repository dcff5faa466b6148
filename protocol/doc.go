// Package protocol implements the line-oriented text protocol spoken between
// groupd and its clients. Each message is a single line of whitespace-separated
// tokens, the first token names the action.
//
//	client -> groupd: setup <name> <level>, join <group>, leave <group>, done <group> <event_nr>
//	groupd -> client: stop <group>, start <group> <type> <event_nr> <node_id>...,
//	                  finish <group> <event_nr>, terminate <group>, set_id <group> <id>
//
// Lines are terminated with a newline character.
package protocol
