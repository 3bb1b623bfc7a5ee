// Copyright 2024 The go-mdhash Authors
// This file is part of go-mdhash.
//
// go-mdhash is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-mdhash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-mdhash. If not, see <http://www.gnu.org/licenses/>.

// mdsum computes message digests of files using the go-mdhash algorithms,
// in the familiar checksum-tool output format.
package main

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-mdhash/md4"
	"github.com/ethereum/go-mdhash/md5"
	"github.com/ethereum/go-mdhash/ripemd160"
	"github.com/ethereum/go-mdhash/sha1"
	"github.com/ethereum/go-mdhash/sha256"
	"github.com/ethereum/go-mdhash/sha512"
)

var algorithms = map[string]func() hash.Hash{
	"md4":       md4.New,
	"md5":       md5.New,
	"ripemd160": ripemd160.New,
	"sha1":      sha1.New,
	"sha224":    sha256.New224,
	"sha256":    sha256.New,
	"sha384":    sha512.New384,
	"sha512":    sha512.New,
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var algorithmFlag = &cli.StringFlag{
	Name:    "algorithm",
	Aliases: []string{"a"},
	Usage:   fmt.Sprintf("digest algorithm %v", algorithmNames()),
	Value:   "sha256",
}

var app = &cli.App{
	Name:      "mdsum",
	Usage:     "compute and benchmark Merkle-Damgard message digests",
	ArgsUsage: "[file...]",
	Flags:     []cli.Flag{algorithmFlag},
	Action:    digestFiles,
	Commands: []*cli.Command{
		speedCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func digestFiles(ctx *cli.Context) error {
	newHash, ok := algorithms[ctx.String(algorithmFlag.Name)]
	if !ok {
		return fmt.Errorf("unknown algorithm %q, have %v", ctx.String(algorithmFlag.Name), algorithmNames())
	}

	if ctx.NArg() == 0 {
		return digestOne(ctx.App.Writer, newHash(), os.Stdin, "-")
	}
	for _, name := range ctx.Args().Slice() {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = digestOne(ctx.App.Writer, newHash(), f, name)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func digestOne(w io.Writer, h hash.Hash, r io.Reader, name string) error {
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	_, err := fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(h.Sum(nil)), name)
	return err
}
