// Command logiksim-inspect is a debugging aid for the circuit core: it
// loads a serialized circuit, prints its layout as tables, and optionally
// serves a localhost-only JSON snapshot endpoint for external tooling —
// the Go analogue of api.Driver's thin wrap-and-print role and
// core/util.go's PrintState table dumps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/serialize"
	"github.com/logiksim/circuitcore/vocab"
	"github.com/tebeka/atexit"
)

func main() {
	file := flag.String("file", "", "path to a serialized circuit (save file or clipboard payload)")
	httpAddr := flag.String("http", "", "if set, serve a localhost JSON inspector at this address (e.g. :8080)")
	selectAll := flag.Bool("select-all", false, "create a selection of every loaded logic item and decoration and report it")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: logiksim-inspect -file <path> [-http :8080] [-select-all]")
		atexit.Exit(2)
	}

	rec, err := serialize.LoadFile(*file)
	if err != nil {
		log.Fatalf("loading %s: %v", *file, err)
	}

	m := modifier.NewBuilder(circuit.New()).Build()
	result := serialize.Import(m, rec, rec.SavePosition, vocab.ModeInsertOrDiscard)
	fmt.Printf(
		"Loaded %s: %d/%d logic items, %d/%d decorations, %d/%d wire segments placed\n",
		*file,
		len(result.LogicItems), len(rec.LogicItems),
		len(result.Decorations), len(rec.Decorations),
		len(result.WireSegments), len(rec.WireSegments),
	)

	printLayoutTables(m.Layout())

	if *selectAll {
		guard := newSelectionGuard(m)
		defer guard.release()
		selectEverything(m, guard.id)
		printSelectionTable(m, guard.id)
	}

	if *httpAddr != "" {
		log.Printf("serving debug inspector on %s", *httpAddr)
		if err := serveInspector(*httpAddr, m); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}
}
