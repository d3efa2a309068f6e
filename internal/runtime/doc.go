// Package runtime implements the schema program: the active template, the
// record store and the commands that operate on them.
package runtime
