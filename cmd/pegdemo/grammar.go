package main

import (
	peg "github.com/hucsmn/pego"
)

// buildArithmetic constructs the left-recursive arithmetic grammar from
// Testable Properties scenario #2:
//
//	add = add '+' mul | add '-' mul | mul
//	mul = mul '*' num | mul '/' num | num
//	num = digit+ | '(' add ')'
//
// It exists to give the driver and both Source variants something with
// real left recursion to chew on, the way a demo CLI for a parser
// combinator library always ships a worked grammar.
func buildArithmetic() *peg.Rule[byte] {
	add := peg.NewRule[byte]("add")
	mul := peg.NewRule[byte]("mul")
	num := peg.NewRule[byte]("num")

	num.Define(peg.Choice[byte](
		peg.OneOrMore(peg.TerminalRange[byte]('0', '9')),
		peg.Sequence[byte](peg.Literal[byte]('('), add, peg.Literal[byte](')')),
	))

	mul.Define(peg.Choice[byte](
		peg.Sequence[byte](mul, peg.Literal[byte]('*'), num),
		peg.Sequence[byte](mul, peg.Literal[byte]('/'), num),
		num,
	))

	add.Define(peg.Choice[byte](
		peg.Sequence[byte](add, peg.Literal[byte]('+'), mul),
		peg.Sequence[byte](add, peg.Literal[byte]('-'), mul),
		mul,
	))

	return add
}
