package function

// And, Or and Coalesce are registered only so the registry can validate
// their (absent, variadic) arity and the optimizer can recognize their
// names; their three-valued, short-circuiting semantics are implemented as
// dedicated functions in package expression (partialEvalAndOrCoalesce,
// rowEvalAnd/Or/Coalesce) that evaluate operands one at a time rather than
// through a realized-argument-vector Eval call. Calling Eval here would be
// a bug in the evaluator, since spec.md requires these names be
// intercepted before the generic Apply path is reached.

// And implements "&&".
func And() Operator { return Operator{Name: "&&"} }

// Or implements "||".
func Or() Operator { return Operator{Name: "||"} }

// Coalesce implements "~".
func Coalesce() Operator { return Operator{Name: "~"} }
