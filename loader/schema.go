package loader

// Schema describes the columns of one kind of export.
type Schema struct {
	Name     string
	Required []string
	Stress   string
	Response string
}

// Osmoscan is the schema of an osmotic gradient ektacytometry export.
var Osmoscan = Schema{
	Name:     "osmoscan",
	Required: []string{"A", "SdA", "B", "SdB", "Eof", "O.", "EI", "SdEI"},
	Stress:   "O.",
	Response: "EI",
}

// Oxygenscan is the schema of an oxygen gradient ektacytometry export.
var Oxygenscan = Schema{
	Name:     "oxygenscan",
	Required: []string{"A", "B", "EI", "pO2", "N2"},
	Stress:   "pO2",
	Response: "EI",
}

// Missing returns the required columns absent from headers, in schema order.
func (s Schema) Missing(headers []string) []string {
	have := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		have[h] = struct{}{}
	}

	var out []string
	for _, r := range s.Required {
		if _, ok := have[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}
