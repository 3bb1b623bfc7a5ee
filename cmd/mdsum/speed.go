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

package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	speedBufFlag = &cli.IntFlag{
		Name:  "bufsize",
		Usage: "size of the input buffer in KiB",
		Value: 1024,
	}
	speedTimeFlag = &cli.DurationFlag{
		Name:  "time",
		Usage: "measurement time per algorithm",
		Value: time.Second,
	}
)

var speedCommand = &cli.Command{
	Name:   "speed",
	Usage:  "measure digest throughput per algorithm",
	Flags:  []cli.Flag{speedBufFlag, speedTimeFlag},
	Action: runSpeed,
}

func runSpeed(ctx *cli.Context) error {
	bufSize := ctx.Int(speedBufFlag.Name) * 1024
	if bufSize <= 0 {
		return fmt.Errorf("invalid buffer size %d KiB", ctx.Int(speedBufFlag.Name))
	}
	measureFor := ctx.Duration(speedTimeFlag.Name)

	buf := make([]byte, bufSize)
	for i := range buf {
		buf[i] = byte(i)
	}

	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, name := range algorithmNames() {
		h := algorithms[name]()

		var processed uint64
		start := time.Now()
		for time.Since(start) < measureFor {
			h.Write(buf)
			processed += uint64(len(buf))
		}
		h.Sum(nil)
		elapsed := time.Since(start)

		rate := float64(processed) / elapsed.Seconds() / (1024 * 1024)
		fmt.Fprintf(ctx.App.Writer, "%s %10.1f MiB/s %s\n",
			bold(fmt.Sprintf("%-10s", name)), rate,
			faint(fmt.Sprintf("(%d KiB buffer, %v)", bufSize/1024, elapsed.Round(time.Millisecond))))
	}
	return nil
}
