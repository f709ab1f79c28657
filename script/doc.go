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

// Package script runs Lua scripts that decide which symbols are listed by
// the rdump command.
//
// The script must define a global function named symbol. The function is
// called once for every symbol with the name of the symbol, the name of the
// section and the offset of the symbol in that section. The symbol is listed
// if the function returns true.
//
//	function symbol(name, section, offset)
//		return section == "code" and offset < 0x100
//	end
//
// Section names are the same as those printed by rdump: data, idata, rdata,
// ridata, equ and code.
package script
