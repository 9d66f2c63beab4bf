package md2notion

import (
	"regexp"
	"strings"
)

// latexCommand matches a LaTeX-style command token: a backslash followed by
// at least two letters.
var latexCommand = regexp.MustCompile(`\\[a-zA-Z]{2,}`)

// mathPatterns is the whitelist of structural math shapes a bare line must
// exhibit. Kept as an enumerable slice so false positives and negatives can
// be characterized pattern by pattern.
var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\\[dt]?frac\s*\{`),                           // fractions
	regexp.MustCompile(`\\(sum|prod|bigcup|bigcap)\b`),               // sums and products
	regexp.MustCompile(`\\(int|iint|iiint|oint)\b`),                  // integrals
	regexp.MustCompile(`\\(lim|limsup|liminf)\b`),                    // limits
	regexp.MustCompile(`\\sqrt\b`),                                   // roots
	regexp.MustCompile(`\\(alpha|beta|gamma|delta|epsilon|varepsilon|zeta|eta|theta|lambda|mu|nu|xi|pi|rho|sigma|tau|phi|varphi|chi|psi|omega|Gamma|Delta|Theta|Lambda|Xi|Pi|Sigma|Phi|Psi|Omega)\b`), // Greek letters
	regexp.MustCompile(`\\(sin|cos|tan|cot|sec|csc|log|ln|exp|min|max|arg|det|gcd)\b`), // named functions
	regexp.MustCompile(`\\(left|right)\b`),                           // delimiter pairs
	regexp.MustCompile(`\\(begin|end)\{[a-zA-Z*]+\}`),                // environments
	regexp.MustCompile(`\\(leq|geq|neq|approx|equiv|sim|simeq|ll|gg|in|subset|subseteq|to|mapsto|implies|iff)\b`), // relations and arrows
}

// IsBareMathLine reports whether a full source line is a bare LaTeX
// expression lacking explicit delimiters. This is a heuristic, not a
// grammar: a line qualifies only when it carries a LaTeX command token AND
// matches one of the whitelisted structural patterns, so prose containing a
// stray backslash stays prose. Lines opening with block markers never
// qualify; those belong to higher-priority block types.
func IsBareMathLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	for _, marker := range []string{"#", "-", "*", "+", ">", "|", "<!--"} {
		if strings.HasPrefix(trimmed, marker) {
			return false
		}
	}
	if numberedItemPattern.MatchString(trimmed) {
		return false
	}
	if !latexCommand.MatchString(trimmed) {
		return false
	}
	for _, pattern := range mathPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}
