// Package quoted extracts the contents of delimiter-quoted string literals
// from text.
//
// A literal is opened and closed by a delimiter character, a single quote
// unless configured otherwise. Inside a literal a doubled delimiter stands
// for one literal delimiter character; every other character stands for
// itself. Text outside literals is ignored.
//
// The recognized language, for the default delimiter:
//
//	<text>    ::= ( <literal> | <other> )* ;
//	<literal> ::= "'" ( <escape> | <char> )* "'" ;
//	<escape>  ::= "''" ;
//	<char>    ::= any character except "'" ;
//	<other>   ::= any character except "'" ;
//
// Extraction yields the decoded contents of the literals in the order their
// closing delimiters appear, and fails if the end of the input is reached
// with a literal still open.
package quoted
