// Package envvar reads configuration from the process environment, falling back to an optional dotenv file.
package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// FileVar names a dotenv file which is consulted for variables that aren't set in the process environment. The file is
// only read, it never modifies the environment.
const FileVar = "CB_LOG_ENV_FILE"

// Lookup returns the value of the environmental variable varName, if it's not set in the environment the file named by
// 'FileVar' is checked. Returns "", false if the variable is set in neither.
func Lookup(varName string) (string, bool) {
	if val, ok := os.LookupEnv(varName); ok {
		return val, true
	}

	return lookupFile(varName)
}

// GetTrimmed returns the value of the environmental variable varName with surrounding whitespace removed, if the env
// var is unset, empty or only whitespace it will return "", false.
func GetTrimmed(varName string) (string, bool) {
	val, ok := Lookup(varName)
	if !ok {
		return "", false
	}

	val = strings.TrimSpace(val)

	return val, val != ""
}

// GetBool returns the boolean value of the environmental variable varName, if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := Lookup(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return false, false
	}

	return ret, true
}

func lookupFile(varName string) (string, bool) {
	path, ok := os.LookupEnv(FileVar)
	if !ok || strings.TrimSpace(path) == "" {
		return "", false
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return "", false
	}

	val, ok := vars[varName]

	return val, ok
}
