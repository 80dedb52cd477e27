// Package cli provides the interactive worklog terminal client.
//
// It wires configuration, local storage and the entry service into a set of
// line-oriented menus. Typical flow: the main menu offers adding an entry or
// searching; each search collects its criteria, runs a query, optionally
// narrows the result to one date or one employee, then hands the list to the
// navigator, where the user pages through matches and edits or deletes them.
//
// The session is started via App.Run(ctx), which blocks until the user quits
// or input reaches EOF. All reads go through one bufio.Reader and all output
// through one io.Writer, so tests drive the whole UI with scripted input.
package cli
