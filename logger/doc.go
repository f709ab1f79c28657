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

// Package logger is the central log for os9rof. Packages log notable events
// with Log() and Logf(), tagging each entry with a short string naming the
// source of the entry:
//
//	logger.Logf(logger.Allow, "rof", "segment %s: %d symbols", name, n)
//
// The log is bounded. Older entries are dropped once the maximum number of
// entries has been reached. Identical adjacent entries are merged and
// counted rather than being repeated.
//
// Logging is gated by a Permission. The Allow value always permits logging.
// Other implementations of the Permission interface can be used to silence
// logging from a component, for example during testing.
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
// Otherwise the log is only visible on request, through Write() or Tail().
package logger
