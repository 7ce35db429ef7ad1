package filterexp

// RegexFlag adjusts how RegexCompare interprets its pattern. Flags combine
// with bitwise OR.
type RegexFlag int64

const (
	// RegexFlagNone matches with the default semantics.
	RegexFlagNone RegexFlag = 0
	// RegexFlagExtended uses POSIX extended regex syntax.
	RegexFlagExtended RegexFlag = 1
	// RegexFlagICase ignores case when matching.
	RegexFlagICase RegexFlag = 2
	// RegexFlagNoSub does not report substring matches.
	RegexFlagNoSub RegexFlag = 4
	// RegexFlagNewline stops wildcards from matching newlines.
	RegexFlagNewline RegexFlag = 8
)

// Eq creates an equal comparison.
func Eq(left, right Expression) Expression {
	return &compoundExpr{op: opEQ, children: []Expression{left, right}}
}

// Ne creates a not equal comparison.
func Ne(left, right Expression) Expression {
	return &compoundExpr{op: opNE, children: []Expression{left, right}}
}

// Gt creates a greater than comparison.
func Gt(left, right Expression) Expression {
	return &compoundExpr{op: opGT, children: []Expression{left, right}}
}

// Ge creates a greater than or equal comparison.
func Ge(left, right Expression) Expression {
	return &compoundExpr{op: opGE, children: []Expression{left, right}}
}

// Lt creates a less than comparison.
func Lt(left, right Expression) Expression {
	return &compoundExpr{op: opLT, children: []Expression{left, right}}
}

// Le creates a less than or equal comparison.
func Le(left, right Expression) Expression {
	return &compoundExpr{op: opLE, children: []Expression{left, right}}
}

// And creates a logical AND over any number of expressions.
func And(exps ...Expression) Expression {
	return &compoundExpr{op: opAnd, children: exps}
}

// Or creates a logical OR over any number of expressions.
func Or(exps ...Expression) Expression {
	return &compoundExpr{op: opOr, children: exps}
}

// Not creates a logical negation.
func Not(exp Expression) Expression {
	return &compoundExpr{op: opNot, children: []Expression{exp}}
}

// RegexCompare matches the string bin against a POSIX regular expression.
func RegexCompare(pattern string, flags RegexFlag, bin Expression) Expression {
	return &regexExpr{flags: flags, pattern: pattern, bin: bin}
}

// GeoCompare compares two geospatial expressions, matching when the point
// side lies within the region side.
func GeoCompare(left, right Expression) Expression {
	return &compoundExpr{op: opGeo, children: []Expression{left, right}}
}
