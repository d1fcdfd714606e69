package parser

import (
	"bytes"
	"fmt"
	"text/scanner"

	"github.com/teranos/expandgen/schema"
)

// token is one lexeme. Comments never appear as tokens; comments on the
// lines directly above a token are kept in doc.
type token struct {
	kind rune
	text string
	pos  schema.Pos
	end  int // byte offset just past the token
	doc  []string
}

func (t token) is(word string) bool {
	return t.kind == scanner.Ident && t.text == word
}

func (t token) isString() bool {
	return t.kind == scanner.String || t.kind == scanner.RawString
}

func (t token) describe() string {
	switch t.kind {
	case scanner.EOF:
		return "end of file"
	case scanner.Ident:
		return fmt.Sprintf("identifier %s", t.text)
	case scanner.String, scanner.RawString:
		return fmt.Sprintf("string %s", t.text)
	case scanner.Int, scanner.Float:
		return fmt.Sprintf("number %s", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

func position(p scanner.Position) schema.Pos {
	return schema.Pos{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// lex splits src into tokens. It fails on the first malformed literal.
func lex(filename string, src []byte) ([]token, token, error) {
	var s scanner.Scanner
	s.Init(bytes.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings | scanner.ScanComments

	var lexErr *schema.Diagnostic
	s.Error = func(s *scanner.Scanner, msg string) {
		if lexErr == nil {
			lexErr = schema.NewDiagnostic(schema.KindSyntax, position(s.Pos()), "%s", msg)
		}
	}

	var (
		toks     []token
		doc      []string
		prevLine int
	)
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if lexErr != nil {
			return nil, token{}, lexErr
		}
		pos := position(s.Position)
		text := s.TokenText()

		if tok == scanner.Comment {
			// a comment sharing a line with the previous token trails it
			if len(toks) > 0 && pos.Line == prevLine {
				continue
			}
			doc = append(doc, text)
			continue
		}

		toks = append(toks, token{kind: tok, text: text, pos: pos, end: s.Pos().Offset, doc: doc})
		doc = nil
		prevLine = s.Pos().Line
	}
	if lexErr != nil {
		return nil, token{}, lexErr
	}

	eof := token{kind: scanner.EOF, pos: position(s.Pos()), end: len(src)}
	eof.pos.Filename = filename
	return toks, eof, nil
}
