package lexer

import (
	"strings"

	"github.com/arcana-lang/arcana/internal/diag"
	"github.com/arcana-lang/arcana/internal/token"
)

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.advance()
		case l.ch == '/' && l.peek() == '/' && l.peekAt(2) == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		case l.ch == '<' && strings.HasPrefix(l.src[l.pos:], "<cmt>"):
			end := strings.Index(l.src[l.pos:], "</cmt>")
			if end == -1 {
				// Unterminated block comment: consume to EOF; the caller's
				// subsequent EOF token surfaces as a normal end of input.
				// A dedicated diagnostic for this is out of scope — block
				// comments aren't part of the grammar's error table.
				for l.ch != 0 {
					l.advance()
				}
				return
			}
			for i := 0; i < end+len("</cmt>"); i++ {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool      { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool { return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
func isIdentCont(ch byte) bool  { return isIdentStart(ch) || isDigit(ch) }

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isIdentCont(l.ch) {
		l.advance()
	}
	return l.src[start:l.pos]
}

func (l *Lexer) readNumber(line, col int) (token.Token, error) {
	start := l.pos
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
		return l.newTok(token.REAL, l.src[start:l.pos], line, col), nil
	}
	if l.ch == '.' {
		// A leading digit followed by '.' with no trailing digit is a
		// malformed real literal (real requires a digit on each side).
		return token.Token{}, &LexError{
			Message: "malformed real literal: expected digit after '.'",
			Pos:     token.Position{Offset: l.pos, Line: l.line, Column: l.column},
			Code:    diag.PUnexpectedToken,
		}
	}
	return l.newTok(token.INT, l.src[start:l.pos], line, col), nil
}

func (l *Lexer) readString(line, col int) (token.Token, error) {
	quote := l.ch
	l.advance() // consume opening quote
	var sb strings.Builder
	for l.ch != quote {
		if l.ch == 0 {
			return token.Token{}, &LexError{
				Message: "unterminated string literal",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnexpectedToken,
			}
		}
		if l.ch == '\\' {
			l.advance()
			sb.WriteByte(escapeByte(l.ch))
			l.advance()
			continue
		}
		sb.WriteByte(l.ch)
		l.advance()
	}
	l.advance() // consume closing quote
	return l.newTok(token.STRING, sb.String(), line, col), nil
}

func escapeByte(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	default:
		return ch
	}
}

// readFString scans cantus'…${expr}…' (or double-quoted) into a single
// FSTRING token whose FParts alternate literal text and raw expression
// source. Expression fragments are not evaluated or parsed here; the
// parser re-parses each fragment through the expression grammar.
func (l *Lexer) readFString(line, col int) (token.Token, error) {
	quote := l.ch
	l.advance() // consume opening quote
	var parts []token.FStringPart
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			parts = append(parts, token.FStringPart{Text: text.String()})
			text.Reset()
		}
	}

	for {
		if l.ch == 0 {
			return token.Token{}, &LexError{
				Message: "unterminated f-string literal",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnexpectedToken,
			}
		}
		if l.ch == quote {
			l.advance()
			break
		}
		if l.ch == '$' && l.peek() == '{' {
			flushText()
			l.advance() // '$'
			l.advance() // '{'
			depth := 1
			start := l.pos
			for depth > 0 {
				if l.ch == 0 {
					return token.Token{}, &LexError{
						Message: "unterminated interpolation in f-string",
						Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
						Code:    diag.PUnexpectedToken,
					}
				}
				if l.ch == '{' {
					depth++
				} else if l.ch == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				l.advance()
			}
			parts = append(parts, token.FStringPart{Text: l.src[start:l.pos], Expr: true})
			l.advance() // consume closing '}'
			continue
		}
		if l.ch == '\\' {
			l.advance()
			text.WriteByte(escapeByte(l.ch))
			l.advance()
			continue
		}
		text.WriteByte(l.ch)
		l.advance()
	}
	flushText()

	tok := l.newTok(token.FSTRING, "", line, col)
	tok.FParts = parts
	return tok, nil
}

var sectionTags = []token.Kind{
	token.FONS_CLOSE, token.FONS_OPEN,
	token.INTRODUCTIO_CLOSE, token.INTRODUCTIO_OPEN,
	token.DOCTRINA_CLOSE, token.DOCTRINA_OPEN,
}

func (l *Lexer) trySectionTag() (token.Kind, bool) {
	rest := l.src[l.pos:]
	for _, kind := range sectionTags {
		lit := string(kind)
		if strings.HasPrefix(rest, lit) {
			for range lit {
				l.advance()
			}
			return kind, true
		}
	}
	return "", false
}

// readOperatorOrPunct handles everything else: operators (longest match
// first) and single-character punctuation.
func (l *Lexer) readOperatorOrPunct(line, col int) (token.Token, error) {
	ch := l.ch

	two := func(expect byte, yes, no token.Kind) (token.Token, error) {
		if l.peek() == expect {
			lit := string(ch) + string(expect)
			l.advance()
			l.advance()
			return l.newTok(yes, lit, line, col), nil
		}
		l.advance()
		return l.newTok(no, string(ch), line, col), nil
	}

	switch ch {
	case '>':
		if l.peek() == '<' {
			l.advance()
			l.advance()
			return l.newTok(token.NEQ, "><", line, col), nil
		}
		return two('=', token.GE, token.GT)
	case '<':
		if l.peek() == '-' {
			l.advance()
			l.advance()
			return l.newTok(token.ARROW_L, "<-", line, col), nil
		}
		return two('=', token.LE, token.LT)
	case '-':
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return l.newTok(token.ARROW_R, "->", line, col), nil
		}
		if l.peek() == '=' {
			return token.Token{}, &LexError{
				Message: "unsupported syntax: compound assignment '-='",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnsupportedSyntax,
			}
		}
		l.advance()
		return l.newTok(token.MINUS, "-", line, col), nil
	case '+':
		if l.peek() == '=' {
			return token.Token{}, &LexError{
				Message: "unsupported syntax: compound assignment '+='",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnsupportedSyntax,
			}
		}
		l.advance()
		return l.newTok(token.PLUS, "+", line, col), nil
	case '*':
		if l.peek() == '*' {
			l.advance()
			l.advance()
			return l.newTok(token.POW, "**", line, col), nil
		}
		if l.peek() == '=' {
			return token.Token{}, &LexError{
				Message: "unsupported syntax: compound assignment '*='",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnsupportedSyntax,
			}
		}
		l.advance()
		return l.newTok(token.STAR, "*", line, col), nil
	case '/':
		if l.peek() == '=' {
			return token.Token{}, &LexError{
				Message: "unsupported syntax: compound assignment '/='",
				Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
				Code:    diag.PUnsupportedSyntax,
			}
		}
		l.advance()
		return l.newTok(token.SLASH, "/", line, col), nil
	case '%':
		l.advance()
		return l.newTok(token.PERCENT, "%", line, col), nil
	case '=':
		return two('=', token.EQ, token.ASSIGN)
	case ';':
		l.advance()
		return l.newTok(token.SEMI, ";", line, col), nil
	case ':':
		l.advance()
		return l.newTok(token.COLON, ":", line, col), nil
	case ',':
		l.advance()
		return l.newTok(token.COMMA, ",", line, col), nil
	case '(':
		l.advance()
		return l.newTok(token.LPAREN, "(", line, col), nil
	case ')':
		l.advance()
		return l.newTok(token.RPAREN, ")", line, col), nil
	case '{':
		l.advance()
		return l.newTok(token.LBRACE, "{", line, col), nil
	case '}':
		l.advance()
		return l.newTok(token.RBRACE, "}", line, col), nil
	case '[':
		l.advance()
		return l.newTok(token.LBRACK, "[", line, col), nil
	case ']':
		l.advance()
		return l.newTok(token.RBRACK, "]", line, col), nil
	}

	l.advance()
	return token.Token{}, &LexError{
		Message: "unrecognized character '" + string(ch) + "'",
		Pos:     token.Position{Offset: l.pos, Line: line, Column: col},
		Code:    diag.PUnexpectedToken,
	}
}
