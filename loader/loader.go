// Package loader reads a Lua "journal" file that declares a starting
// world: ingredients and trophies on hand, brewed potions, learned
// formulas, and bestiary knowledge. The Lua VM is sandboxed and
// discarded after loading; the interactive protocol is unaffected.
package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/erer-can/witcher-tracker/engine/parser"
	"github.com/erer-can/witcher-tracker/engine/state"
	"github.com/erer-can/witcher-tracker/types"
)

// Load executes the journal file and returns the world it declares.
// Every name in the journal is held to the same lexical rules as the
// interactive grammar.
func Load(path string) (*types.World, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	w := state.NewWorld()
	registerAPI(L, w)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing journal %s: %w", path, err)
	}
	return w, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that could touch the filesystem or load code.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerAPI installs the journal constructors as Lua globals.
func registerAPI(L *lua.LState, w *types.World) {
	// Ingredients { Rebis = 5, Vitriol = 3 }
	L.SetGlobal("Ingredients", L.NewFunction(func(L *lua.LState) int {
		forEachCount(L, "ingredient", parser.ValidWordName, func(name string, count int) {
			state.AddIngredient(w, name, count)
		})
		return 0
	}))

	// Trophies { Drowner = 2 }
	L.SetGlobal("Trophies", L.NewFunction(func(L *lua.LState) int {
		forEachCount(L, "trophy", parser.ValidWordName, func(name string, count int) {
			state.AddTrophy(w, name, count)
		})
		return 0
	}))

	// Potions { Swallow = 1, ["Black Blood"] = 2 }
	L.SetGlobal("Potions", L.NewFunction(func(L *lua.LState) int {
		forEachCount(L, "potion", parser.ValidCompoundName, func(name string, count int) {
			w.Potions[name] += count
		})
		return 0
	}))

	// Formula "Swallow" { {3, "Celandine"}, {2, "Rebis"} }
	// Curried: Formula("name") returns a function taking the ingredient table.
	L.SetGlobal("Formula", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			if !parser.ValidCompoundName(name) {
				L.RaiseError("invalid potion name %q", name)
			}
			if state.Formula(w, name) != nil {
				L.RaiseError("duplicate formula for %q", name)
			}

			var items []types.ItemStack
			var ferr error
			tbl.ForEach(func(_, v lua.LValue) {
				pair, ok := v.(*lua.LTable)
				if !ok {
					ferr = fmt.Errorf("formula %q: entries must be {count, name} pairs", name)
					return
				}
				count := int(lua.LVAsNumber(pair.RawGetInt(1)))
				ing := lua.LVAsString(pair.RawGetInt(2))
				if count <= 0 || !parser.ValidWordName(ing) {
					ferr = fmt.Errorf("formula %q: bad entry {%d, %q}", name, count, ing)
					return
				}
				items = append(items, types.ItemStack{Name: ing, Count: count})
			})
			if ferr != nil {
				L.RaiseError("%v", ferr)
			}
			if len(items) == 0 {
				L.RaiseError("formula %q: empty ingredient list", name)
			}
			state.SetFormula(w, name, items)
			return 0
		}))
		return 1
	}))

	// Monster "Harpy" { signs = {"Igni"}, potions = {"Grapeshot"} }
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			if !parser.ValidWordName(name) {
				L.RaiseError("invalid monster name %q", name)
			}
			entry := state.EnsureEntry(w, name)

			if err := eachString(tbl.RawGetString("signs"), parser.ValidWordName, func(s string) {
				entry.Signs[s] = true
			}); err != nil {
				L.RaiseError("monster %q signs: %v", name, err)
			}
			if err := eachString(tbl.RawGetString("potions"), parser.ValidCompoundName, func(s string) {
				entry.Potions[s] = true
			}); err != nil {
				L.RaiseError("monster %q potions: %v", name, err)
			}
			return 0
		}))
		return 1
	}))
}

// forEachCount walks a {name = count} table, validating names with the
// given rule and counts as strictly positive integers.
func forEachCount(L *lua.LState, what string, valid func(string) bool, apply func(string, int)) {
	tbl := L.CheckTable(1)
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		if k.Type() != lua.LTString {
			err = fmt.Errorf("%s names must be strings, got %s", what, k.Type())
			return
		}
		name := lua.LVAsString(k)
		count := int(lua.LVAsNumber(v))
		if !valid(name) {
			err = fmt.Errorf("invalid %s name %q", what, name)
			return
		}
		if count <= 0 {
			err = fmt.Errorf("%s %q: count must be positive, got %v", what, name, v)
			return
		}
		apply(name, count)
	})
	if err != nil {
		L.RaiseError("%v", err)
	}
}

// eachString walks an array-style table of strings. A nil value is fine
// (the field was omitted).
func eachString(v lua.LValue, valid func(string) bool, apply func(string)) error {
	if v == lua.LNil {
		return nil
	}
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("expected a list, got %s", v.Type())
	}
	var err error
	tbl.ForEach(func(_, item lua.LValue) {
		if err != nil {
			return
		}
		if item.Type() != lua.LTString {
			err = fmt.Errorf("expected string entries, got %s", item.Type())
			return
		}
		s := lua.LVAsString(item)
		if !valid(s) {
			err = fmt.Errorf("invalid name %q", s)
			return
		}
		apply(s)
	})
	return err
}
