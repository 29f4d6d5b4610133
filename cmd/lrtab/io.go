package main

import (
	"encoding/json"
	"os"

	"github.com/lrtab/lrtab/grammar"
)

// readTable loads a compiled table previously written by `lrtab
// compile`.
func readTable(path string) (*grammar.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dump grammar.TableDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, err
	}

	return grammar.LoadTable(dump)
}
