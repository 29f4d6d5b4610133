package gramtext

import (
	"errors"

	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/lrerr"
)

// Parse reads a textual grammar (see the package doc for the syntax)
// and returns the start symbol name plus its productions as
// grammar.RawProduction values, ready to pass to grammar.New. On
// malformed input it keeps scanning past the bad line and returns
// every problem it found as a lrerr.SpecErrors value instead of
// stopping at the first.
func Parse(src string) (startName string, prods []grammar.RawProduction, err error) {
	p := &parser{lex: newLexer(src)}
	return p.parse()
}

type parser struct {
	lex     *lexer
	peeked  *token
	lastTok token
	errs    lrerr.SpecErrors
}

func (p *parser) parse() (string, []grammar.RawProduction, error) {
	var start string
	var prods []grammar.RawProduction

	p.skipNewlines()

	if p.consume(tokenKindKWStart) {
		if !p.consume(tokenKindID) {
			p.fail("expected a non-terminal name after 'start'")
		} else {
			start = p.lastTok.text
		}
		if !p.consume(tokenKindSemicolon) {
			p.fail("expected ';' after start declaration")
		}
		p.skipNewlines()
	}

	for {
		p.skipNewlines()
		if p.consume(tokenKindEOF) {
			break
		}

		rp, ok := p.parseProductionLine()
		if ok {
			prods = append(prods, rp)
		} else {
			p.skipToSemicolon()
		}
	}

	if len(p.errs) > 0 {
		return start, prods, p.errs
	}
	return start, prods, nil
}

// parseProductionLine reads "lhs => rhs1, rhs2, ...;": one production
// per line, commas separating the RHS symbols, an empty RHS (nothing
// between "=>" and ";") denoting ε. Newlines are tolerated after the
// arrow and after each comma so a long RHS can wrap.
func (p *parser) parseProductionLine() (grammar.RawProduction, bool) {
	if !p.consume(tokenKindID) {
		p.fail("expected a production's left-hand side")
		return grammar.RawProduction{}, false
	}
	lhs := p.lastTok.text

	if !p.consume(tokenKindArrow) {
		p.fail("expected '=>' after left-hand side")
		return grammar.RawProduction{}, false
	}
	p.skipNewlines()

	var rhs []string
	if p.consume(tokenKindID) {
		rhs = append(rhs, p.lastTok.text)
		for p.consume(tokenKindComma) {
			p.skipNewlines()
			if !p.consume(tokenKindID) {
				p.fail("expected a symbol name after ','")
				return grammar.RawProduction{LHS: lhs, RHS: rhs}, false
			}
			rhs = append(rhs, p.lastTok.text)
		}
	}

	if !p.consume(tokenKindSemicolon) {
		p.fail("expected ';' at the end of a production")
		return grammar.RawProduction{LHS: lhs, RHS: rhs}, false
	}

	return grammar.RawProduction{LHS: lhs, RHS: rhs}, true
}

func (p *parser) consume(kind tokenKind) bool {
	tok := p.next()
	if tok.kind == kind {
		p.lastTok = tok
		return true
	}
	p.peeked = &tok
	return false
}

func (p *parser) next() token {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok
	}
	tok, err := p.lex.next()
	if err != nil {
		p.errs = append(p.errs, &lrerr.SpecError{Cause: err, Row: p.lex.row})
		return p.next()
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.consume(tokenKindNewline) {
	}
}

func (p *parser) skipToSemicolon() {
	for {
		tok := p.next()
		if tok.kind == tokenKindSemicolon || tok.kind == tokenKindEOF {
			return
		}
	}
}

func (p *parser) fail(message string) {
	p.errs = append(p.errs, &lrerr.SpecError{Cause: errors.New(message), Row: p.lastTok.row})
}
