package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/modifier"
	"github.com/logiksim/circuitcore/vocab"
)

// printLayoutTables renders every logic item, decoration, and inserted wire
// segment currently in l as tables, the same table.Writer idiom
// core.PrintState uses for register/buffer dumps.
func printLayoutTables(l *layout.Layout) {
	printLogicItemsTable(l)
	fmt.Println()
	printDecorationsTable(l)
	fmt.Println()
	printWiresTable(l)
}

func printLogicItemsTable(l *layout.Layout) {
	t := table.NewWriter()
	t.SetTitle("Logic Items")
	t.AppendHeader(table.Row{"ID", "Type", "Position", "Orientation", "Inputs", "Outputs"})

	for i := 0; i < l.LogicItems.Len(); i++ {
		id := vocab.LogicItemID(i)
		def, err := l.LogicItems.Get(id)
		if err != nil {
			continue
		}
		t.AppendRow(table.Row{
			int(id), def.Type.String(), def.Position, def.Orientation.Name(),
			def.InputCount, def.OutputCount,
		})
	}

	fmt.Println(t.Render())
}

func printDecorationsTable(l *layout.Layout) {
	t := table.NewWriter()
	t.SetTitle("Decorations")
	t.AppendHeader(table.Row{"ID", "Type", "Position", "Size"})

	for i := 0; i < l.Decorations.Len(); i++ {
		id := vocab.DecorationID(i)
		def, err := l.Decorations.Get(id)
		if err != nil {
			continue
		}
		t.AppendRow(table.Row{int(id), def.Type.String(), def.Position, def.Size})
	}

	fmt.Println(t.Render())
}

func printWiresTable(l *layout.Layout) {
	t := table.NewWriter()
	t.SetTitle("Wire Segments")
	t.AppendHeader(table.Row{"Wire", "Segment", "P0", "P1"})

	for _, wireID := range l.Wires.InsertedIds() {
		tree, err := l.Wires.Tree(wireID)
		if err != nil {
			continue
		}
		for _, idx := range tree.Indices() {
			line, err := tree.Line(idx)
			if err != nil {
				continue
			}
			t.AppendRow(table.Row{int(wireID), idx, line.P0, line.P1})
		}
	}

	fmt.Println(t.Render())
}

// printSelectionTable renders the membership of the selection identified by
// id, a smaller dump used by -select-all.
func printSelectionTable(m *modifier.Modifier, id vocab.SelectionID) {
	sel, err := m.Selection(id)
	if err != nil {
		fmt.Printf("selection %d: %v\n", id, err)
		return
	}

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Selection %d", id))
	t.AppendHeader(table.Row{"Kind", "Count"})
	t.AppendRow(table.Row{"Logic items", len(sel.LogicItems())})
	t.AppendRow(table.Row{"Decorations", len(sel.Decorations())})
	t.AppendRow(table.Row{"Selected segments", len(sel.SelectedSegments())})

	fmt.Println(t.Render())
}

// selectEverything adds every logic item and decoration currently in m's
// layout to the selection identified by id.
func selectEverything(m *modifier.Modifier, id vocab.SelectionID) {
	sel, err := m.Selection(id)
	if err != nil {
		return
	}
	l := m.Layout()
	for i := 0; i < l.LogicItems.Len(); i++ {
		_ = sel.AddLogicItem(vocab.LogicItemID(i))
	}
	for i := 0; i < l.Decorations.Len(); i++ {
		_ = sel.AddDecoration(vocab.DecorationID(i))
	}
}
