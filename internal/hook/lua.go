package hook

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// LuaFunc compiles a Lua chunk into a hook handler. The chunk sees the
// globals hook_name and hook_param; calling error() fails the hook.
//
// Each run gets a fresh state with only the base, table, string and math
// libraries open.
func LuaFunc(source string) (Func, error) {
	chunk, err := parse.Parse(strings.NewReader(source), "<hook>")
	if err != nil {
		return nil, fmt.Errorf("parsing hook: %w", err)
	}
	proto, err := lua.Compile(chunk, "<hook>")
	if err != nil {
		return nil, fmt.Errorf("compiling hook: %w", err)
	}

	return func(name, param string) error {
		L := lua.NewState(lua.Options{SkipOpenLibs: true})
		defer L.Close()

		lua.OpenBase(L)
		lua.OpenTable(L)
		lua.OpenString(L)
		lua.OpenMath(L)

		L.SetGlobal("hook_name", lua.LString(name))
		L.SetGlobal("hook_param", lua.LString(param))

		L.Push(L.NewFunctionFromProto(proto))
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return fmt.Errorf("lua: %w", err)
		}
		return nil
	}, nil
}
