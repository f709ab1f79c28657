// This file is part of os9rof.
//
// os9rof is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// os9rof is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with os9rof.  If not, see <https://www.gnu.org/licenses/>.

package dump

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/os9rof/rof"
)

// Graph writes the structure of the segments in graphviz dot format.
func Graph(output io.Writer, segs []*rof.Segment) {
	memviz.Map(output, &segs)
}
