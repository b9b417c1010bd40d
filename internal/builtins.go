package internal

// Lam2 builds a curried two-argument function. The outer closure captures
// a; Go closures retain captured refs across repeated invocations of the
// inner closure, so no explicit re-capture is needed per call.
func Lam2(f func(a, b *Ref) *Ref) *Ref {
	return Lam(func(a *Ref) *Ref {
		return Lam(func(b *Ref) *Ref {
			return f(a, b)
		})
	})
}

// Lam3 builds a curried three-argument function.
func Lam3(f func(a, b, c *Ref) *Ref) *Ref {
	return Lam(func(a *Ref) *Ref {
		return Lam(func(b *Ref) *Ref {
			return Lam(func(c *Ref) *Ref {
				return f(a, b, c)
			})
		})
	})
}

// Inc is the unary successor. The argument may still be an unevaluated
// application, so it is forced before unboxing.
func Inc() *Ref {
	return Lam(func(n *Ref) *Ref {
		return Int(ForceInt(n) + 1)
	})
}

// Add is curried integer addition.
func Add() *Ref {
	return Lam2(func(a, b *Ref) *Ref {
		return Int(ForceInt(a) + ForceInt(b))
	})
}

// Mul is curried integer multiplication.
func Mul() *Ref {
	return Lam2(func(a, b *Ref) *Ref {
		return Int(ForceInt(a) * ForceInt(b))
	})
}
