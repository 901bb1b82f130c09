// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
)

const usage = "gohack-asm filename"

var errReported = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   usage,
	Short: "Assembles Hack assembly into a .hack binary text file",
	Long: `Gohack-asm translates a Hack assembly source file into Hack machine
code, one 16 character line of '0' and '1' per instruction. The output is
written next to the input, with everything from the first '.' of the file
name replaced by '.hack'. Nothing is written if the source contains any
error.`,

	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return gohackAsm(args[0])
	},
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

// Max.asm -> Max.hack, dir/Max.v2.asm -> dir/Max.hack
func outputPath(input string) string {
	dir, filename := filepath.Split(input)

	if i := strings.IndexByte(filename, '.'); i != -1 {
		filename = filename[:i]
	}

	return dir + filename + ".hack"
}

// Writes into a temporary file first so a failed write never leaves a
// truncated output behind
func writeOutput(path string, words []uint16) error {
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")

	if err != nil {
		return err
	}

	defer os.Remove(file.Name())

	if err := encoding.WriteWords(file, words); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	if err := os.Chmod(file.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(file.Name(), path)
}

func reportErrors(source []byte, errs []error) {
	lines := strings.Split(string(source), "\n")

	for _, err := range errs {
		var encErr assembler.EncodingError

		if !errors.As(err, &encErr) {
			log.Println(err)
			continue
		}

		cursor := encErr.GetPosition()

		if cursor.Line < 1 || cursor.Line > len(lines) || cursor.Size < 1 {
			log.Println(err)
			continue
		}

		line := strings.TrimRight(lines[cursor.Line-1], "\r")

		underlinefmt := fmt.Sprintf(
			"%% %ds%s",
			cursor.Column,
			strings.Repeat("~", cursor.Size-1),
		)

		log.Printf(
			"%s\n%s\n%s",
			err,
			line,
			red(fmt.Sprintf(underlinefmt, "^")),
		)
	}
}

func gohackAsm(infile string) error {
	log.SetPrefix(bold(filepath.Base(infile) + ":"))

	if stat, err := os.Stat(infile); err != nil {
		log.Println(&assembler.InputNotFoundError{Path: infile, Err: err})
		return errReported
	} else if stat.IsDir() {
		log.Printf("%s is not a valid Hack assembly file", infile)
		return errReported
	}

	source, err := os.ReadFile(infile)

	if err != nil {
		log.Println(&assembler.InputNotFoundError{Path: infile, Err: err})
		return errReported
	}

	result, errs := assembler.AssembleHackSource(
		bytes.NewReader(source), assembler.NewSymTable(),
	)

	if len(errs) > 0 {
		reportErrors(source, errs)
		return errReported
	}

	if err := writeOutput(outputPath(infile), result); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return errReported
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err != errReported {
			log.Println(err)
			log.Println(usage)
		}

		os.Exit(1)
	}
}
