package lexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	tests := []Token{
		{LET, "let"},
		{IDENT, "five"},
		{ASSIGN, "="},
		{INT, "5"},
		{SEMICOLON, ";"},
		{LET, "let"},
		{IDENT, "ten"},
		{ASSIGN, "="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{LET, "let"},
		{IDENT, "add"},
		{ASSIGN, "="},
		{FUNCTION, "fn"},
		{LPAREN, "("},
		{IDENT, "x"},
		{COMMA, ","},
		{IDENT, "y"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{IDENT, "x"},
		{PLUS, "+"},
		{IDENT, "y"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{SEMICOLON, ";"},
		{LET, "let"},
		{IDENT, "result"},
		{ASSIGN, "="},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "five"},
		{COMMA, ","},
		{IDENT, "ten"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{BANG, "!"},
		{MINUS, "-"},
		{SLASH, "/"},
		{ASTERISK, "*"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{INT, "5"},
		{LT, "<"},
		{INT, "10"},
		{GT, ">"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{IF, "if"},
		{LPAREN, "("},
		{INT, "5"},
		{LT, "<"},
		{INT, "10"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{TRUE, "true"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{ELSE, "else"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{FALSE, "false"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"},
		{EQ, "=="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{INT, "10"},
		{NOT_EQ, "!="},
		{INT, "9"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range tests {
		got := l.NextToken()
		require.Equalf(t, want.Type, got.Type, "token %d: type", i)
		require.Equalf(t, want.Literal, got.Literal, "token %d: literal", i)
	}
}

func TestNextToken_EOFIsSticky(t *testing.T) {
	l := New("x")
	require.Equal(t, IDENT, l.NextToken().Type)
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		require.Equal(t, EOF, tok.Type)
		require.Equal(t, "", tok.Literal)
	}
}

func TestNextToken_WhitespaceVariants(t *testing.T) {
	l := New("1\t+\n2\r\n*3")
	var got []TokenType
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		got = append(got, tok.Type)
	}
	require.Equal(t, []TokenType{INT, PLUS, INT, ASTERISK, INT}, got)
}

func TestNextToken_Illegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	require.Equal(t, ILLEGAL, tok.Type)
	require.Equal(t, "@", tok.Literal)
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: LET, Literal: "let"}
	require.Equal(t, "Token(Type='LET', Literal='let')", tok.String())
	require.Equal(t, "Token(Type='LET', Literal='let')", fmt.Sprintf("%s", tok))
}
