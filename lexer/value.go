package lexer

import (
	"fmt"
	"strconv"
)

// Value is a literal value carried by a Number, String or BoolLiteral token.
type Value interface {
	fmt.Stringer
}

type NumberValue float64

func (n NumberValue) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type StringValue string

func (s StringValue) String() string {
	return string(s)
}

type BooleanValue bool

func (b BooleanValue) String() string {
	return fmt.Sprintf("%t", b)
}
