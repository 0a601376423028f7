// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview launches a local HTTP server showing runtime statistics
// of the running program. It is only functional when built with the statsview
// build tag. Otherwise Available() returns false and Launch() does nothing.
//
// Charts are served by github.com/go-echarts/statsview at:
//
//	localhost:12601/debug/statsview
//
// The standard pprof pages are at:
//
//	localhost:12601/debug/pprof/
package statsview
