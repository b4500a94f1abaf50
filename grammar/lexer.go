package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the lexer
const (
	NumberTok int = iota + 1
	IdentTok
	TrueTok
	FalseTok
	OperatorTok
	LeftParenTok
	RightParenTok
	CommaTok
)

// The tokens representing operator lexemes
var operators = []string{
	"+", "-", "*", "/", "%", "^", "**",
	"<", "<=", ">", ">=", "==", "!=",
	"!", "&&", "||",
}

// Identifiers with special meaning
var keywords = map[string]int{
	"true":  TrueTok,
	"false": FalseTok,
	"and":   OperatorTok,
	"or":    OperatorTok,
	"xor":   OperatorTok,
	"not":   OperatorTok,
}

var lexerOnce sync.Once // monitors one-time creation of the lexer
var exprLexer *lexmachine.Lexer
var lexerErr error

// Lexer returns the (compiled) lexmachine lexer for expressions.
// It is created once and shared; lexmachine lexers may create scanners
// concurrently.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("creating lexer")
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip) // skip whitespace
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(NumberTok))
		lexer.Add([]byte(`\.[0-9]+`), makeToken(NumberTok))
		lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeSymbol())
		lexer.Add([]byte(`\(`), makeToken(LeftParenTok))
		lexer.Add([]byte(`\)`), makeToken(RightParenTok))
		lexer.Add([]byte(`,`), makeToken(CommaTok))
		for _, o := range operators {
			lexer.Add([]byte(escape(o)), makeToken(OperatorTok))
		}
		if lexerErr = lexer.Compile(); lexerErr == nil {
			exprLexer = lexer
		}
	})
	return exprLexer, lexerErr
}

// Lexeme is a raw token of the lexer.
type Lexeme struct {
	Type int
	Text string
	Span Span
}

// Scan splits a source text into lexemes.
func Scan(src string) ([]Lexeme, error) {
	lexer, err := Lexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var lexemes []Lexeme
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return lexemes, &SyntaxError{
					Span: Span{From: ui.StartTC, To: ui.FailTC},
					Msg:  fmt.Sprintf("unexpected input %q", src[ui.StartTC:ui.FailTC]),
				}
			}
			return lexemes, err
		}
		t := tok.(*lexmachine.Token)
		lexemes = append(lexemes, Lexeme{
			Type: t.Type,
			Text: string(t.Lexeme),
			Span: Span{From: t.TC, To: t.TC + len(t.Lexeme)},
		})
	}
	return lexemes, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func makeSymbol() lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		if t, ok := keywords[lexeme]; ok { // is a keyword
			return s.Token(t, lexeme, m), nil
		}
		return s.Token(IdentTok, lexeme, m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func escape(lexeme string) string {
	var b strings.Builder
	for _, r := range lexeme {
		b.WriteRune('\\')
		b.WriteRune(r)
	}
	return b.String()
}
