// Package expr builds arithmetic expressions over database columns that
// amounts can be combined with without being evaluated.
//
// An amount applied to a column yields an expression rather than a value:
//
//	res, _ := price.Apply(money.OpAdd, expr.F("balance"))
//	d, _ := res.Deferred()
//	sql, args := d.(expr.Expr).SQL() // (? + "balance"), [10.00]
package expr

import (
	"strings"

	"github.com/pago46/money"
)

// Expr is a deferred expression that renders to parameterised SQL.
type Expr interface {
	money.Deferred
	// SQL returns the expression text with ? placeholders and its arguments.
	SQL() (string, []any)
}

// Column refers to a column of the row being updated.
type Column struct {
	name string
}

// F returns a reference to the named column.
func F(name string) Column {
	return Column{name: name}
}

// Name returns the column name.
func (c Column) Name() string {
	return c.name
}

// RAdd returns the expression a + c.
func (c Column) RAdd(a money.Amount) money.Deferred { return reflected(a, money.OpAdd, c) }

// RSub returns the expression a - c.
func (c Column) RSub(a money.Amount) money.Deferred { return reflected(a, money.OpSub, c) }

// RMul returns the expression a * c.
func (c Column) RMul(a money.Amount) money.Deferred { return reflected(a, money.OpMul, c) }

// RQuo returns the expression a / c.
func (c Column) RQuo(a money.Amount) money.Deferred { return reflected(a, money.OpQuo, c) }

// SQL renders the column as a quoted identifier.
func (c Column) SQL() (string, []any) {
	return `"` + strings.ReplaceAll(c.name, `"`, `""`) + `"`, nil
}

// Value is an amount literal inside an expression.
type Value struct {
	Amount money.Amount
}

// RAdd returns the expression a + v.
func (v Value) RAdd(a money.Amount) money.Deferred { return reflected(a, money.OpAdd, v) }

// RSub returns the expression a - v.
func (v Value) RSub(a money.Amount) money.Deferred { return reflected(a, money.OpSub, v) }

// RMul returns the expression a * v.
func (v Value) RMul(a money.Amount) money.Deferred { return reflected(a, money.OpMul, v) }

// RQuo returns the expression a / v.
func (v Value) RQuo(a money.Amount) money.Deferred { return reflected(a, money.OpQuo, v) }

// SQL renders the value as a placeholder bound to the decimal string of the amount.
func (v Value) SQL() (string, []any) {
	return "?", []any{v.Amount.Decimal().String()}
}

// Binary is the expression Left Op Right.
type Binary struct {
	Left  Expr
	Op    money.Op
	Right Expr
	curr  money.Currency
}

func reflected(a money.Amount, op money.Op, right Expr) Binary {
	return Binary{Left: Value{a}, Op: op, Right: right, curr: a.Curr()}
}

// Curr returns the currency of the amount the expression was built from.
// For nested expressions it is the currency of the outermost amount.
func (b Binary) Curr() money.Currency {
	return b.curr
}

// RAdd returns the expression a + b.
func (b Binary) RAdd(a money.Amount) money.Deferred { return reflected(a, money.OpAdd, b) }

// RSub returns the expression a - b.
func (b Binary) RSub(a money.Amount) money.Deferred { return reflected(a, money.OpSub, b) }

// RMul returns the expression a * b.
func (b Binary) RMul(a money.Amount) money.Deferred { return reflected(a, money.OpMul, b) }

// RQuo returns the expression a / b.
func (b Binary) RQuo(a money.Amount) money.Deferred { return reflected(a, money.OpQuo, b) }

// SQL renders the expression in parentheses, left operand arguments first.
func (b Binary) SQL() (string, []any) {
	l, largs := b.Left.SQL()
	r, rargs := b.Right.SQL()
	return "(" + l + " " + b.Op.String() + " " + r + ")", append(largs, rargs...)
}
