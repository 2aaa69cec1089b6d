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
	"os"
	"os/signal"

	"github.com/jetsetilly/glbench/logger"
	"github.com/pkg/term"
)

// canceller ends a benchmark on an interrupt signal or on a key press in the
// controlling terminal. The window's own input is handled by the
// presentation backend.
type canceller struct {
	intChan chan os.Signal
	tty     *term.Term
}

func newCanceller() *canceller {
	c := &canceller{
		intChan: make(chan os.Signal, 1),
	}
	signal.Notify(c.intChan, os.Interrupt)

	// not having a terminal is normal. for example, when the benchmark is
	// started by a script
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		logger.Logf(logger.Allow, "glbench", "no terminal input: %v", err)
	} else {
		c.tty = tty
	}

	return c
}

// cancelled never blocks.
func (c *canceller) cancelled() bool {
	select {
	case <-c.intChan:
		logger.Log(logger.Allow, "glbench", "interrupt signal")
		return true
	default:
	}

	if c.tty != nil {
		n, err := c.tty.Available()
		if err != nil {
			logger.Logf(logger.Allow, "glbench", "terminal input: %v", err)
			c.close()
			return false
		}
		if n > 0 {
			// drain so the key press does not appear on the command line
			// after the program has ended
			b := make([]byte, n)
			_, _ = c.tty.Read(b)
			logger.Log(logger.Allow, "glbench", "key press in terminal")
			return true
		}
	}

	return false
}

func (c *canceller) close() {
	signal.Stop(c.intChan)
	if c.tty != nil {
		_ = c.tty.Restore()
		_ = c.tty.Close()
		c.tty = nil
	}
}
