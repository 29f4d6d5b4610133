package cache

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/lrtab/lrtab/grammar"
)

// This file contains the binary format for cached table blobs,
// composed from rezi's primitive encoders with one small helper pair
// per dump type.

// tableBlob wraps a grammar.TableDump so it can implement
// encoding.BinaryMarshaler/Unmarshaler for rezi.EncBinary/DecBinary.
// grammar.Table itself holds unexported maps, which is why
// Dump/LoadTable exist to flatten it first.
type tableBlob struct {
	grammar.TableDump
}

func (b *tableBlob) MarshalBinary() ([]byte, error) {
	var enc []byte

	enc = append(enc, rezi.EncString(b.StartName)...)

	enc = append(enc, rezi.EncInt(len(b.Productions))...)
	for _, p := range b.Productions {
		enc = append(enc, encRawProduction(p)...)
	}

	enc = append(enc, rezi.EncInt(len(b.States))...)
	for _, items := range b.States {
		enc = append(enc, rezi.EncInt(len(items))...)
		for _, it := range items {
			enc = append(enc, encItem(it)...)
		}
	}

	enc = append(enc, rezi.EncInt(b.StartState)...)

	enc = append(enc, rezi.EncInt(len(b.Actions))...)
	for _, a := range b.Actions {
		enc = append(enc, encAction(a)...)
	}

	enc = append(enc, rezi.EncInt(len(b.Gotos))...)
	for _, g := range b.Gotos {
		enc = append(enc, encGoto(g)...)
	}

	return enc, nil
}

func (b *tableBlob) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	b.StartName, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("start name: %w", err)
	}
	data = data[n:]

	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("production count: %w", err)
	}
	data = data[n:]
	b.Productions = make([]grammar.RawProduction, count)
	for i := range b.Productions {
		b.Productions[i], n, err = decRawProduction(data)
		if err != nil {
			return fmt.Errorf("production %d: %w", i, err)
		}
		data = data[n:]
	}

	count, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("state count: %w", err)
	}
	data = data[n:]
	b.States = make([][]grammar.ItemDump, count)
	for i := range b.States {
		itemCount, n, err := rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("state %d item count: %w", i, err)
		}
		data = data[n:]
		b.States[i] = make([]grammar.ItemDump, itemCount)
		for j := range b.States[i] {
			b.States[i][j], n, err = decItem(data)
			if err != nil {
				return fmt.Errorf("state %d item %d: %w", i, j, err)
			}
			data = data[n:]
		}
	}

	b.StartState, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("start state: %w", err)
	}
	data = data[n:]

	count, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("action count: %w", err)
	}
	data = data[n:]
	b.Actions = make([]grammar.ActionDump, count)
	for i := range b.Actions {
		b.Actions[i], n, err = decAction(data)
		if err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
		data = data[n:]
	}

	count, n, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("goto count: %w", err)
	}
	data = data[n:]
	b.Gotos = make([]grammar.GotoDump, count)
	for i := range b.Gotos {
		b.Gotos[i], n, err = decGoto(data)
		if err != nil {
			return fmt.Errorf("goto %d: %w", i, err)
		}
		data = data[n:]
	}

	return nil
}

func encSymbol(d grammar.SymbolDump) []byte {
	enc := rezi.EncInt(int(d.Kind))
	enc = append(enc, rezi.EncString(d.Name)...)
	return enc
}

func decSymbol(data []byte) (grammar.SymbolDump, int, error) {
	var d grammar.SymbolDump

	kind, n, err := rezi.DecInt(data)
	if err != nil {
		return d, 0, fmt.Errorf("kind: %w", err)
	}
	tot := n

	name, n, err := rezi.DecString(data[tot:])
	if err != nil {
		return d, tot, fmt.Errorf("name: %w", err)
	}
	tot += n

	d.Kind = grammar.SymbolKind(kind)
	d.Name = name
	return d, tot, nil
}

func encRawProduction(p grammar.RawProduction) []byte {
	enc := rezi.EncString(p.LHS)
	enc = append(enc, rezi.EncInt(len(p.RHS))...)
	for _, name := range p.RHS {
		enc = append(enc, rezi.EncString(name)...)
	}
	return enc
}

func decRawProduction(data []byte) (grammar.RawProduction, int, error) {
	var p grammar.RawProduction

	lhs, n, err := rezi.DecString(data)
	if err != nil {
		return p, 0, fmt.Errorf("lhs: %w", err)
	}
	tot := n
	p.LHS = lhs

	count, n, err := rezi.DecInt(data[tot:])
	if err != nil {
		return p, tot, fmt.Errorf("rhs count: %w", err)
	}
	tot += n

	for i := 0; i < count; i++ {
		name, n, err := rezi.DecString(data[tot:])
		if err != nil {
			return p, tot, fmt.Errorf("rhs %d: %w", i, err)
		}
		tot += n
		p.RHS = append(p.RHS, name)
	}

	return p, tot, nil
}

func encItem(it grammar.ItemDump) []byte {
	enc := rezi.EncInt(it.ProdIndex)
	enc = append(enc, rezi.EncInt(it.DotPosition)...)
	enc = append(enc, encSymbol(it.Lookahead)...)
	return enc
}

func decItem(data []byte) (grammar.ItemDump, int, error) {
	var it grammar.ItemDump

	v, n, err := rezi.DecInt(data)
	if err != nil {
		return it, 0, fmt.Errorf("production index: %w", err)
	}
	tot := n
	it.ProdIndex = v

	v, n, err = rezi.DecInt(data[tot:])
	if err != nil {
		return it, tot, fmt.Errorf("dot position: %w", err)
	}
	tot += n
	it.DotPosition = v

	sym, n, err := decSymbol(data[tot:])
	if err != nil {
		return it, tot, fmt.Errorf("lookahead: %w", err)
	}
	tot += n
	it.Lookahead = sym

	return it, tot, nil
}

func encAction(a grammar.ActionDump) []byte {
	enc := rezi.EncInt(a.State)
	enc = append(enc, encSymbol(a.Sym)...)
	enc = append(enc, rezi.EncInt(int(a.Type))...)
	enc = append(enc, rezi.EncInt(a.NextState)...)
	enc = append(enc, rezi.EncInt(a.ProdIndex)...)
	return enc
}

func decAction(data []byte) (grammar.ActionDump, int, error) {
	var a grammar.ActionDump

	v, n, err := rezi.DecInt(data)
	if err != nil {
		return a, 0, fmt.Errorf("state: %w", err)
	}
	tot := n
	a.State = v

	sym, n, err := decSymbol(data[tot:])
	if err != nil {
		return a, tot, fmt.Errorf("symbol: %w", err)
	}
	tot += n
	a.Sym = sym

	v, n, err = rezi.DecInt(data[tot:])
	if err != nil {
		return a, tot, fmt.Errorf("action type: %w", err)
	}
	tot += n
	a.Type = grammar.ActionType(v)

	v, n, err = rezi.DecInt(data[tot:])
	if err != nil {
		return a, tot, fmt.Errorf("next state: %w", err)
	}
	tot += n
	a.NextState = v

	v, n, err = rezi.DecInt(data[tot:])
	if err != nil {
		return a, tot, fmt.Errorf("production index: %w", err)
	}
	tot += n
	a.ProdIndex = v

	return a, tot, nil
}

func encGoto(g grammar.GotoDump) []byte {
	enc := rezi.EncInt(g.State)
	enc = append(enc, encSymbol(g.Sym)...)
	enc = append(enc, rezi.EncInt(g.Next)...)
	return enc
}

func decGoto(data []byte) (grammar.GotoDump, int, error) {
	var g grammar.GotoDump

	v, n, err := rezi.DecInt(data)
	if err != nil {
		return g, 0, fmt.Errorf("state: %w", err)
	}
	tot := n
	g.State = v

	sym, n, err := decSymbol(data[tot:])
	if err != nil {
		return g, tot, fmt.Errorf("symbol: %w", err)
	}
	tot += n
	g.Sym = sym

	v, n, err = rezi.DecInt(data[tot:])
	if err != nil {
		return g, tot, fmt.Errorf("next state: %w", err)
	}
	tot += n
	g.Next = v

	return g, tot, nil
}
