package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"ttsedit/internal/cli"
	"ttsedit/internal/log"
)

func main() {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "ttsedit crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	cli.Execute()
}
