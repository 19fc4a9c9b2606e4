package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/scripting"
)

type fixedSource struct{ v int }

func (s fixedSource) Intn(n int) int { return s.v % n }

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func newTestManager(t *testing.T, logger *zap.Logger) *scripting.Manager {
	t.Helper()
	roller := dice.NewRoller(fixedSource{v: 3}, zap.NewNop())
	return scripting.NewManager(roller, logger, 0)
}

func TestLoad_ExecutesScriptsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "b.lua", `order = order .. "b"`)
	writeScript(t, dir, "a.lua", `order = "a"`)
	writeScript(t, dir, "probe.lua", `
function probe_order(pid, cond)
  engine.log(order)
end`)

	core, logs := observer.New(zap.InfoLevel)
	m := newTestManager(t, zap.New(core))
	defer m.Close()
	require.NoError(t, m.Load(dir))

	m.Run("probe_order", "p1", "poisoned")
	entries := logs.FilterMessage("scripting: hook log").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ab", entries[0].ContextMap()["message"])
}

func TestLoad_BadScriptFails(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.lua", `function broken(`)
	m := newTestManager(t, zap.NewNop())
	assert.Error(t, m.Load(dir))
}

func TestLoad_MissingDirFails(t *testing.T) {
	m := newTestManager(t, zap.NewNop())
	assert.Error(t, m.Load("/nonexistent/scripts"))
}

func TestRun_UndefinedHookIsNoOp(t *testing.T) {
	dir := t.TempDir()
	m := newTestManager(t, zap.NewNop())
	defer m.Close()
	require.NoError(t, m.Load(dir))

	m.Run("no_such_hook", "p1", "poisoned")
}

func TestRun_WithoutLoadIsNoOp(t *testing.T) {
	m := newTestManager(t, zap.NewNop())
	m.Run("anything", "p1", "poisoned")
}

func TestRun_PassesArguments(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hooks.lua", `
function on_apply(pid, cond)
  engine.log(pid .. ":" .. cond)
end`)

	core, logs := observer.New(zap.InfoLevel)
	m := newTestManager(t, zap.New(core))
	defer m.Close()
	require.NoError(t, m.Load(dir))

	m.Run("on_apply", "p42", "stunned")
	entries := logs.FilterMessage("scripting: hook log").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "p42:stunned", entries[0].ContextMap()["message"])
}

func TestRun_RuntimeErrorLoggedNotPropagated(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hooks.lua", `
function exploding(pid, cond)
  error("boom")
end`)

	core, logs := observer.New(zap.WarnLevel)
	m := newTestManager(t, zap.New(core))
	defer m.Close()
	require.NoError(t, m.Load(dir))

	m.Run("exploding", "p1", "poisoned")
	assert.Equal(t, 1, logs.FilterMessage("scripting: Lua runtime error").Len())
}

func TestRun_EngineRoll(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hooks.lua", `
function roll_probe(pid, cond)
  engine.log(tostring(engine.roll("2d6+3")))
end`)

	core, logs := observer.New(zap.InfoLevel)
	m := newTestManager(t, zap.New(core))
	defer m.Close()
	require.NoError(t, m.Load(dir))

	m.Run("roll_probe", "p1", "poisoned")
	entries := logs.FilterMessage("scripting: hook log").All()
	require.Len(t, entries, 1)
	// fixedSource{3} makes every d6 face 4, so 2d6+3 = 11.
	assert.Equal(t, "11", entries[0].ContextMap()["message"])
}

func TestRun_BudgetResetsBetweenHooks(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hooks.lua", `
function spin(pid, cond)
  for i = 1, 200 do end
end`)

	roller := dice.NewRoller(fixedSource{v: 3}, zap.NewNop())
	m := scripting.NewManager(roller, zap.NewNop(), 5_000)
	defer m.Close()
	require.NoError(t, m.Load(dir))

	// Each invocation gets a fresh opcode budget; repeated calls must not
	// exhaust a shared counter.
	for i := 0; i < 10; i++ {
		m.Run("spin", "p1", "poisoned")
	}
}
