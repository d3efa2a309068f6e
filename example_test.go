package schemarepl_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/schemarepl"
	"github.com/aretw0/schemarepl/pkg/codec"
)

func ExampleRepl_Run() {
	input := strings.Join([]string{
		"set-schema firstname|string|255 lastname|string|255 age|int",
		"add 'John' 'Doe' 30",
		"add 'Jane' 'Doe'",
		"get 0",
	}, "\n")

	r := schemarepl.New(schemarepl.WithPrompt(""))
	_ = r.Run(context.Background(), strings.NewReader(input), os.Stdout)

	// Output:
	// (0, {firstname: 'John', lastname: 'Doe', age: 30})
	// Error: incorrect number of fields: expected 3, actual 2
	// firstname: 'John'
	// lastname: 'Doe'
	// age: 30
	//
	// Exiting on EOF.
}

func ExampleRepl_Exec() {
	r := schemarepl.New(schemarepl.WithFormat(codec.FormatJSON))
	ctx := context.Background()

	_, _ = r.Exec(ctx, "set_schema name|string|10 qty|int")
	out, err := r.Exec(ctx, "add 'bolt' 12")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)

	// Output:
	// {"index":0,"record":{"name":"bolt","qty":12}}
}

func ExampleRepl_Add() {
	r := schemarepl.New()
	r.SetSchema("firstname|string|255 age|int")

	if _, _, err := r.Add("John 30"); err != nil {
		fmt.Println(err)
	}
	idx, rec, _ := r.Add("'John' 30")
	fmt.Println(idx, rec.Inline())

	// Output:
	// field "firstname": string must be enclosed in single quotes (e.g. 'value') (got John)
	// 0 {firstname: 'John', age: 30}
}
