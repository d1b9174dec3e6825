package cli

import (
	"encoding/json"
	"fmt"

	"github.com/traktport/traktport/pkg/cliconfig"
)

// printResult outputs a single operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is
// written to stdout. Human-readable prose must go to stderr or be omitted
// entirely. textFn is called only in text mode.
func printResult(cfg *cliconfig.Config, data any, textFn func()) {
	if cfg.JSON {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return
		}
		fmt.Println(string(out))
		return
	}
	textFn()
}
