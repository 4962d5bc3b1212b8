package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ErrInvalidOperand is returned by [Amount.Apply] when the operand cannot be
// combined with an amount using the requested operator.
var ErrInvalidOperand = errors.New("invalid operand")

// Deferred is an expression evaluated later by a persistence layer, such as
// "column X of the row being updated".
// An amount never evaluates a deferred operand: [Amount.Apply] hands itself to
// the reflected operator of the operand and returns the resulting expression.
type Deferred interface {
	// RAdd returns the expression a + self.
	RAdd(a Amount) Deferred
	// RSub returns the expression a - self.
	RSub(a Amount) Deferred
	// RMul returns the expression a * self.
	RMul(a Amount) Deferred
	// RQuo returns the expression a / self.
	RQuo(a Amount) Deferred
}

// Op is an arithmetic operator accepted by [Amount.Apply].
type Op int

// Operators accepted by [Amount.Apply].
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpQuo
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpQuo:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Result holds the outcome of [Amount.Apply]: either an amount computed
// immediately or a deferred expression.
type Result struct {
	amount   Amount
	deferred Deferred
}

// Amount returns the computed amount and true, or false if the result is deferred.
func (r Result) Amount() (Amount, bool) {
	return r.amount, r.deferred == nil
}

// Deferred returns the deferred expression and true, or false if the result
// was computed immediately.
func (r Result) Deferred() (Deferred, bool) {
	return r.deferred, r.deferred != nil
}

// IsDeferred reports whether the result is a deferred expression.
func (r Result) IsDeferred() bool {
	return r.deferred != nil
}

// Apply combines amount a with an operand of any supported kind:
//   - a [Deferred] operand is never evaluated; its reflected operator is
//     called with a and the resulting expression is returned;
//   - an [Amount] operand is accepted by OpAdd and OpSub, see [Amount.Add]
//     and [Amount.Sub]; multiplying or dividing two amounts is not defined;
//   - a numeric operand ([decimal.Decimal], integers, floats, decimal strings)
//     is a dimensionless factor accepted by OpMul and OpQuo, see [Amount.Mul]
//     and [Amount.Quo].
//
// Apply returns [ErrInvalidOperand] for any other combination.
func (a Amount) Apply(op Op, operand any) (Result, error) {
	switch x := operand.(type) {
	case Deferred:
		return a.applyDeferred(op, x)
	case Amount:
		var (
			b   Amount
			err error
		)
		switch op {
		case OpAdd:
			b, err = a.Add(x)
		case OpSub:
			b, err = a.Sub(x)
		default:
			return Result{}, fmt.Errorf("computing [%v %v %v]: %w: amounts cannot be multiplied or divided by amounts", a.raw(), op, x.raw(), ErrInvalidOperand)
		}
		if err != nil {
			return Result{}, err
		}
		return Result{amount: b}, nil
	default:
		e, err := toDecimal(operand)
		if err != nil {
			return Result{}, fmt.Errorf("computing [%v %v %v]: %w: %w", a.raw(), op, operand, ErrInvalidOperand, err)
		}
		return a.applyFactor(op, e)
	}
}

func (a Amount) applyDeferred(op Op, x Deferred) (Result, error) {
	var d Deferred
	switch op {
	case OpAdd:
		d = x.RAdd(a)
	case OpSub:
		d = x.RSub(a)
	case OpMul:
		d = x.RMul(a)
	case OpQuo:
		d = x.RQuo(a)
	default:
		return Result{}, fmt.Errorf("computing [%v %v deferred]: %w", a.raw(), op, ErrInvalidOperand)
	}
	if d == nil {
		return Result{}, fmt.Errorf("computing [%v %v deferred]: %w: nil expression", a.raw(), op, ErrInvalidOperand)
	}
	return Result{deferred: d}, nil
}

func (a Amount) applyFactor(op Op, e decimal.Decimal) (Result, error) {
	var (
		b   Amount
		err error
	)
	switch op {
	case OpMul:
		b, err = a.Mul(e)
	case OpQuo:
		b, err = a.Quo(e)
	default:
		return Result{}, fmt.Errorf("computing [%v %v %v]: %w: numbers cannot be added to amounts", a.raw(), op, e, ErrInvalidOperand)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{amount: b}, nil
}
