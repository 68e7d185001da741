package encode

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}
func EncodeWidth(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
