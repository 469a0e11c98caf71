package beeper

import (
	"path/filepath"
	"runtime"
	"strings"
)

const unknownFile = "unknown"

// Origin is the source position printed in front of a message.
type Origin struct {
	File     string
	Line     int
	Function string
}

// CurrentOrigin returns the file, line and function name of its caller. The
// file is reduced to its last two path elements.
//
// Example:
//
//	o := beeper.CurrentOrigin()
//	beeper.Emit(nil, o.File, o.Line, "info", "listening on %s", addr)
func CurrentOrigin() Origin {
	return callerOrigin(2)
}

func callerOrigin(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Origin{File: unknownFile, Function: unknownFile}
	}
	return Origin{File: trimFile(file), Line: line, Function: functionNameForPC(pc)}
}

func trimFile(file string) string {
	if file == "" {
		return unknownFile
	}
	file = filepath.ToSlash(file)
	i := strings.LastIndex(file, "/")
	if i < 0 {
		return file
	}
	if j := strings.LastIndex(file[:i], "/"); j >= 0 {
		return file[j+1:]
	}
	return file
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownFile
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFile
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFile
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFile
	}
	return name
}
