package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// promptMnemonic reads a mnemonic phrase from the terminal without echoing
// it, restoring the terminal state if the user interrupts the prompt.
func promptMnemonic() (string, error) {
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		_ = term.Restore(int(syscall.Stdin), initialTermState)
		os.Exit(1)
	}()

	fmt.Print("Enter mnemonic phrase: ")
	mnemonic, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	signal.Stop(interrupt)
	if err != nil {
		return "", err
	}

	return string(mnemonic), nil
}
