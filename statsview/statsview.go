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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/glbench/logger"
)

// Address of the statistics server.
const Address = "localhost:12700"

const url = "/debug/statsview"

// Launch a new goroutine running the statsview. The server runs for the
// lifetime of the program.
func Launch(output io.Writer) error {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", Address, url)
	_, err := fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	return err
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
