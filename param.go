package msqlite

import (
	"github.com/orsinium-labs/enum"

	"github.com/msqlite/msqlite/internal/engine"
)

// paramKind tags the closed set of bindable value shapes.
type paramKind enum.Member[string]

var (
	paramFloat64 = paramKind{Value: "float64"}
	paramInt     = paramKind{Value: "int"}
	paramInt64   = paramKind{Value: "int64"}
	paramText    = paramKind{Value: "text"}
	paramTextPtr = paramKind{Value: "textptr"}
	paramChar    = paramKind{Value: "char"}
	paramBool    = paramKind{Value: "bool"}
	paramNull    = paramKind{Value: "null"}
)

// Param is one positional bind value for a PreparedStatement. Construct
// it with one of the typed constructors; the zero Param binds NULL.
type Param struct {
	kind paramKind
	f    float64
	i    int64
	s    string
	sp   *string
	c    byte
	b    bool
}

// Float64 binds a floating-point value.
func Float64(v float64) Param { return Param{kind: paramFloat64, f: v} }

// Int binds an integer value using the engine's int binding.
func Int(v int) Param { return Param{kind: paramInt, i: int64(v)} }

// Int64 binds a 64-bit integer value.
func Int64(v int64) Param { return Param{kind: paramInt64, i: v} }

// Text binds an owned string value. An empty string binds a zero-length
// text value, not NULL.
func Text(v string) Param { return Param{kind: paramText, s: v} }

// TextPtr binds the pointed-to string, or NULL when v is nil.
func TextPtr(v *string) Param { return Param{kind: paramTextPtr, sp: v} }

// Char binds a single byte as a 1-byte text value.
func Char(v byte) Param { return Param{kind: paramChar, c: v} }

// Bool binds a boolean as integer 0 or 1.
func Bool(v bool) Param { return Param{kind: paramBool, b: v} }

// Null binds SQL NULL.
func Null() Param { return Param{kind: paramNull} }

// bind applies the parameter to the statement at the given 1-based
// index, dispatching on its kind.
func (p Param) bind(stmt *engine.Stmt, index int) error {
	switch p.kind {
	case paramFloat64:
		return stmt.BindFloat64(index, p.f)
	case paramInt:
		return stmt.BindInt(index, int(p.i))
	case paramInt64:
		return stmt.BindInt64(index, p.i)
	case paramText:
		return stmt.BindText(index, p.s)
	case paramTextPtr:
		if p.sp == nil {
			return stmt.BindNull(index)
		}
		return stmt.BindText(index, *p.sp)
	case paramChar:
		return stmt.BindText(index, string(p.c))
	case paramBool:
		return stmt.BindBool(index, p.b)
	default:
		return stmt.BindNull(index)
	}
}
