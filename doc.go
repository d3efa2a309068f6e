/*
Package schemarepl declares record schemas from a compact template, validates
space-separated data lines against them and keeps the results in an
append-only, index-addressed store.

# Concept

A template lists typed fields:

	firstname|string|255 lastname|string|255 age|int

String values are single-quoted and bounded by their max length (quotes
included); int values are decimal digits. Every add builds a fresh record
from the template, fills it positionally and validates it before storing.
A record that fails is never stored and never consumes an index.

# Usage

As a library:

	r := schemarepl.New()
	r.SetSchema("firstname|string|255 age|int")

	idx, rec, err := r.Add("'John' 30")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(idx, rec.Inline()) // 0 {firstname: 'John', age: 30}

As a command loop over any reader:

	err := schemarepl.New().Run(ctx, os.Stdin, os.Stdout)

The schemarepl command wraps the same loop with a line editor, history and
configuration.
*/
package schemarepl
