package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/rex/match"
	"github.com/dhamidi/rex/syntax"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> [file...]",
		Short: "Print input lines matching a pattern, grep style",
		Long: `Print input lines matching a pattern, grep style.

Reads standard input when no files are given. Exits 0 when at least one
line matched, 1 when none did, and 2 on a usage or I/O error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := syntax.Parse(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "rex: parse pattern: %v\n", err)
				os.Exit(2)
			}

			paths := args[1:]
			multi := len(paths) > 1
			foundAny := false

			if len(paths) == 0 {
				found, err := scanAndPrint("stdin", os.Stdin, re, false)
				if err != nil {
					fmt.Fprintf(os.Stderr, "rex: %v\n", err)
					os.Exit(2)
				}
				foundAny = found
			}

			for _, path := range paths {
				f, err := os.Open(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "rex: %v\n", err)
					os.Exit(2)
				}
				found, err := scanAndPrint(path, f, re, multi)
				f.Close()
				if err != nil {
					fmt.Fprintf(os.Stderr, "rex: %s: %v\n", path, err)
					os.Exit(2)
				}
				if found {
					foundAny = true
				}
			}

			if !foundAny {
				os.Exit(1)
			}
			return nil
		},
	}

	return cmd
}

func scanAndPrint(name string, r io.Reader, re syntax.Regexp, prefix bool) (bool, error) {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		if !match.MatchString(re, line) {
			continue
		}
		found = true
		if prefix {
			fmt.Printf("%s:%s\n", name, line)
		} else {
			fmt.Println(line)
		}
	}
	return found, scanner.Err()
}
