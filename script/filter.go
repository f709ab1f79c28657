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

package script

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jetsetilly/os9rof/logger"
	"github.com/jetsetilly/os9rof/rof"
	lua "github.com/yuin/gopher-lua"
)

// the name of the global function called for each symbol
const filterFunction = "symbol"

// NoFilterFunction is returned if a script does not define the global
// symbol function.
var NoFilterFunction = errors.New("script does not define a symbol function")

// Filter decides which symbols are included in a listing.
type Filter struct {
	// the lua state is not safe for concurrent use
	crit sync.Mutex
	L    *lua.LState
	fn   lua.LValue
}

// NewFilter runs the script in the named file and returns a Filter that
// uses the script's symbol function.
func NewFilter(filename string) (*Filter, error) {
	return newFilter(func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

// NewFilterFromString is the same as NewFilter but the script is supplied as
// a string.
func NewFilterFromString(script string) (*Filter, error) {
	return newFilter(func(L *lua.LState) error {
		return L.DoString(script)
	})
}

func newFilter(load func(*lua.LState) error) (*Filter, error) {
	L := lua.NewState()

	err := load(L)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("script: %w", err)
	}

	fn := L.GetGlobal(filterFunction)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("script: %w", NoFilterFunction)
	}

	return &Filter{
		L:  L,
		fn: fn,
	}, nil
}

// Close the Filter. The Filter should not be used after this.
func (f *Filter) Close() {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.L.Close()
}

// Include returns true if the symbol should be included in a listing.
func (f *Filter) Include(sym rof.Symbol) (bool, error) {
	f.crit.Lock()
	defer f.crit.Unlock()

	err := f.L.CallByParam(lua.P{
		Fn:      f.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(sym.Name), lua.LString(sym.Reference.Target().String()), lua.LNumber(sym.Reference.Offset))
	if err != nil {
		return false, fmt.Errorf("script: %s: %w", sym.Name, err)
	}

	ret := f.L.Get(-1)
	f.L.Pop(1)

	// values other than nil and false are true
	if ret.Type() != lua.LTBool && ret.Type() != lua.LTNil {
		logger.Logf(logger.Allow, "script", "%s function returned a %s for %s",
			filterFunction, ret.Type(), sym.Name)
	}

	return lua.LVAsBool(ret), nil
}
