package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the engine.* Lua table into L:
//
//	engine.log(msg)    -- structured info log from a hook
//	engine.roll(expr)  -- roll a dice expression ("2d6+3"), returns the total
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()

	L.SetField(engine, "log", L.NewFunction(func(ls *lua.LState) int {
		msg := ls.CheckString(1)
		m.logger.Info("scripting: hook log", zap.String("message", msg))
		return 0
	}))

	L.SetField(engine, "roll", L.NewFunction(func(ls *lua.LState) int {
		expr := ls.CheckString(1)
		result, err := m.roller.RollExpr(expr)
		if err != nil {
			ls.RaiseError("bad dice expression %q: %s", expr, err.Error())
			return 0
		}
		ls.Push(lua.LNumber(result.Total()))
		return 1
	}))

	L.SetGlobal("engine", engine)
}
