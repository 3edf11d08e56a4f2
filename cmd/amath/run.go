package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/specmark/amath/amath"
	"github.com/specmark/amath/luaamath"
)

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	var common commonFlags
	common.register(fs)
	checkOnly := fs.Bool("check", false, "only compile the script without executing")
	watch := fs.Bool("watch", false, "re-run the script whenever it changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("amath run: script path required")
	}
	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}

	if *checkOnly {
		return checkScript(scriptPath)
	}

	_, conv, err := common.resolve()
	if err != nil {
		return err
	}
	run := func() error {
		return runScript(scriptPath, remaining[1:], conv)
	}
	if !*watch {
		return run()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchScript(ctx, scriptPath, run)
}

func checkScript(path string) error {
	L := lua.NewState()
	defer L.Close()
	if _, err := L.LoadFile(path); err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}
	return nil
}

// runScript executes path in a fresh Lua state with the amath module
// preloaded and prints any values the chunk returns.
func runScript(path string, args []string, conv amath.Converter) error {
	L := lua.NewState()
	defer L.Close()
	luaamath.Preload(L, conv)

	argTable := L.NewTable()
	argTable.RawSetInt(0, lua.LString(path))
	for i, raw := range args {
		argTable.RawSetInt(i+1, lua.LString(raw))
	}
	L.SetGlobal("arg", argTable)

	slog.Debug("running script", "path", path, "args", len(args))
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	for i := 1; i <= L.GetTop(); i++ {
		if v := L.Get(i); v != lua.LNil {
			fmt.Println(v.String())
		}
	}
	return nil
}
