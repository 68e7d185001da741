// Package encode renders form trees back to reader syntax.
//
// # Usage
//
//	n, _ := parse.Parse([]byte("`[1 ~x]"))
//	x, _ := expand.Expand(n)
//	err := encode.Encode(x.Form(), os.Stdout)
//
// # Related Packages
//
//   - github.com/frenchy64/quotefold/form - form representation
//   - github.com/frenchy64/quotefold/parse - parse text to forms
package encode
