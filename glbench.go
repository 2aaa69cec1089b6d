// This file is part of glbench.
//
// glbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glbench.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glbench/bench"
	"github.com/jetsetilly/glbench/logger"
	"github.com/jetsetilly/glbench/modalflag"
	"github.com/jetsetilly/glbench/performance"
	"github.com/jetsetilly/glbench/statsview"
	"github.com/jetsetilly/glbench/version"
)

// exit values
const (
	exitOK    = 0
	exitError = 1
)

// number of log entries shown after an error
const errorLogTail = 10

// the arguments were not understood and the help message should be shown
var errUsage = errors.New("usage")

// #mainthread
//
// rendering contexts are bound to the thread that makes them current. the
// benchmark runs entirely in the main goroutine so it must stay on the main
// thread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "INFO")
	md.AdditionalHelp(usage)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitError
	}

	logger.Logf(logger.Allow, "glbench", "%s", version.String())

	switch md.Mode() {
	case "RUN":
		err = run(md, stdout, stderr)
	case "INFO":
		err = info(md, stdout, stderr)
	}

	return exitValue(md, err, stderr)
}

// exitValue reports the error and returns the exit value for it
func exitValue(md *modalflag.Modes, err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	// problems with the command line that are not problems with a specific
	// value show the help message and are not treated as failures
	if errors.Is(err, errUsage) || errors.Is(err, bench.ErrModeSelection) {
		md.Help()
		return exitOK
	}

	fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
	if !errors.Is(err, modalflag.ErrInvalidChoice) && !errors.Is(err, bench.ErrInvalidCLIValue) {
		logger.Tail(logger.NewColorizer(stderr), errorLogTail)
	}

	return exitError
}

// parseMode parses the flags for the current mode
func parseMode(md *modalflag.Modes) (bool, error) {
	md.AdditionalHelp(usage)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		if errors.Is(err, modalflag.ErrInvalidChoice) {
			return false, err
		}
		return false, fmt.Errorf("%w: %w", errUsage, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return false, fmt.Errorf("%w: unexpected arguments", errUsage)
	}

	return true, nil
}

func run(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	opts := addRunOptions(md)

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if *opts.log {
		logger.SetEcho(logger.NewColorizer(stderr))
		defer logger.SetEcho(nil)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}

	profile, err := opts.profiling()
	if err != nil {
		return err
	}

	resultsFile, memvizFile, err := opts.output()
	if err != nil {
		return err
	}

	backend, err := newBackend(*opts.backend)
	if err != nil {
		return err
	}

	if *opts.statsview {
		if err := statsview.Launch(stderr); err != nil {
			logger.Log(logger.Allow, "glbench", err)
		}
	}

	sess, err := bench.NewSession(backend, cfg, bench.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Log(logger.Allow, "glbench", err)
		}
	}()

	if memvizFile != "" {
		if err := writeMemviz(memvizFile, sess); err != nil {
			return err
		}
	}

	cancel := newCanceller()
	defer cancel.close()

	err = performance.RunProfiler(profile, version.ApplicationName, func() error {
		return sess.Run(stdout, cancel.cancelled)
	})
	if err != nil {
		return err
	}

	results := sess.Results()

	if resultsFile != "" {
		if err := writeResults(resultsFile, results); err != nil {
			return err
		}
	}

	if *opts.summary {
		if err := bench.WriteSummary(stderr, results); err != nil {
			return err
		}
	}

	return nil
}

func info(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	opts := addInfoOptions(md)

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if *opts.log {
		logger.SetEcho(logger.NewColorizer(stderr))
		defer logger.SetEcho(nil)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}

	backend, err := newBackend(*opts.backend)
	if err != nil {
		return err
	}

	sess, err := bench.NewSession(backend, cfg, bench.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Log(logger.Allow, "glbench", err)
		}
	}()

	return sess.WriteInfo(stdout)
}

func writeMemviz(filename string, sess *bench.Session) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = errors.Join(rerr, fmt.Errorf("memviz: %w", err))
		}
	}()

	memviz.Map(f, sess)
	logger.Logf(logger.Allow, "glbench", "object graph written to %s", filename)

	return nil
}

func writeResults(filename string, results bench.Results) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("results: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = errors.Join(rerr, fmt.Errorf("results: %w", err))
		}
	}()

	err = bench.WriteResults(f, results)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "glbench", "results written to %s", filename)

	return nil
}
