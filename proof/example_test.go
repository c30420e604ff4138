package proof_test

import (
	"fmt"

	"github.com/katalvlaran/cospan/proof"
	"github.com/katalvlaran/cospan/rule"
	"github.com/katalvlaran/cospan/term"
)

// ExampleCheck verifies a two-step proof: fusing f ; g into h and back.
func ExampleCheck() {
	f := term.Gen("f", 1, 1)
	g := term.Gen("g", 1, 1)
	h := term.Gen("h", 1, 1)

	lhs, _ := term.Compile(term.Seq(f, g))
	rhs, _ := term.Compile(h)
	fuse, _ := rule.New("fuse", lhs, rhs)

	_, err := proof.Check(term.Seq(f, g), []proof.Step{
		{Rule: fuse, Target: h},
		{Rule: fuse, Reverse: true, Target: term.Seq(f, g)},
	})
	fmt.Println(err)
	// Output:
	// <nil>
}
