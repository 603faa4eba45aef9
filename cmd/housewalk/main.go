package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/vinser/housewalk/internal/app"
	"github.com/vinser/housewalk/internal/flags"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("housewalk: ")

	fl, err := flags.Parse(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, flags.ErrSyntax) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(fl, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
