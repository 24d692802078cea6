// Command opticsctl applies an optics path expression to a JSON or YAML
// document: read the foci, set them, or remove them.
//
//	opticsctl get 'a.b.c' doc.json
//	opticsctl preview 'm.n.names[?id=="id-2500"]' doc.json
//	opticsctl set 'm.n.names[*].name' --value '"anon"' doc.yaml
//	opticsctl remove 'children{s1}' doc.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "opticsctl:", err)
		os.Exit(1)
	}
}
