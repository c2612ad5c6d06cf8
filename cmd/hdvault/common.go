package main

import (
	"fmt"
	"os"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
	os.Exit(1)
}
