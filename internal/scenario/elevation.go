// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ErrBadElevation indicates a grid elevation expression that does not
// compile or does not evaluate to a number.
var ErrBadElevation = errors.New("scenario: bad elevation expression")

// luaElevation evaluates a Lua expression in x and z, for example
// "0.2 * x + math.sin(z)". The first evaluation error sticks and later calls
// return 0.
type luaElevation struct {
	state *lua.LState
	fn    lua.LValue
	err   error
}

func newLuaElevation(expr string) (*luaElevation, error) {
	state := lua.NewState()
	if err := state.DoString("function elevation(x, z) return " + expr + " end"); err != nil {
		state.Close()
		return nil, fmt.Errorf("%w: %q: %v", ErrBadElevation, expr, err)
	}

	return &luaElevation{state: state, fn: state.GetGlobal("elevation")}, nil
}

func (e *luaElevation) at(x, z float64) float64 {
	if e.err != nil {
		return 0
	}
	err := e.state.CallByParam(lua.P{Fn: e.fn, NRet: 1, Protect: true}, lua.LNumber(x), lua.LNumber(z))
	if err != nil {
		e.err = fmt.Errorf("%w: at (%g, %g): %v", ErrBadElevation, x, z, err)
		return 0
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		e.err = fmt.Errorf("%w: at (%g, %g): got %s, want number", ErrBadElevation, x, z, ret.Type())
		return 0
	}

	return float64(n)
}

func (e *luaElevation) Close() { e.state.Close() }
