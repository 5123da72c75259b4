package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log2 returns log2(|x|) computed with prec bits of precision.
// Returns -Inf if x is zero.
func Log2(x *big.Int, prec uint) *big.Float {

	if x.Sign() == 0 {
		return new(big.Float).SetPrec(prec).SetInf(true)
	}

	xf := NewFloat(new(big.Int).Abs(x), prec)

	// log2(x) = ln(x) / ln(2)
	ln := bigfloat.Log(xf)
	return ln.Quo(ln, bigfloat.Log(NewFloat(2, prec)))
}
