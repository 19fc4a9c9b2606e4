package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/dice"
)

// Manager owns one sandboxed LState holding every loaded condition hook
// script and dispatches hook calls into it.
//
// Manager is safe for concurrent Run after Load completes. The LState is
// single-threaded; a mutex serialises concurrent hook dispatch.
type Manager struct {
	mu        sync.Mutex
	state     *lua.LState
	roller    *dice.Roller
	logger    *zap.Logger
	instLimit int
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil.
func NewManager(roller *dice.Roller, logger *zap.Logger, instLimit int) *Manager {
	return &Manager{
		roller:    roller,
		logger:    logger,
		instLimit: instLimit,
	}
}

// Load creates a sandboxed VM, registers the engine.* modules, then
// executes every *.lua file in scriptDir in lexicographic order. Calling
// Load again replaces the previous VM.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: The VM is ready for Run; returns error on Lua load failure.
func (m *Manager) Load(scriptDir string) error {
	L := NewSandboxedState(m.instLimit)
	m.RegisterModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	if m.state != nil {
		m.state.Close()
	}
	m.state = L
	m.mu.Unlock()
	return nil
}

// Close releases the Lua VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.state.Close()
		m.state = nil
	}
}

// Run calls the named Lua global function with the participant ID and
// condition name. Missing VMs and undefined hooks are silent no-ops; Lua
// runtime errors are logged at Warn level and never propagated. This is
// the condition engine's HookRunner contract.
func (m *Manager) Run(hook, participantID, conditionName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return
	}
	fn := m.state.GetGlobal(hook)
	if fn == lua.LNil {
		return
	}

	resetBudget(m.state, m.instLimit)
	if err := m.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LString(participantID), lua.LString(conditionName)); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.String("participant_id", participantID),
			zap.String("condition", conditionName),
			zap.Error(err),
		)
	}
}
