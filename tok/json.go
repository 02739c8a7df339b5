package tok

import "encoding/json"

// jsonTok is the wire shape for ToJSON/FromJSON: Kind is rendered as its
// name rather than its underlying int so a serialized stream survives
// additions to the Kind enum in a readable form (mirrors the original
// implementation's parse_tokens dict shape).
type jsonTok struct {
	Kind     string `json:"kind"`
	Txt      string `json:"txt,omitempty"`
	Val      Val    `json:"val"`
	Original string `json:"original,omitempty"`
	Spans    []int  `json:"spans,omitempty"`
}

// ToJSON serializes t for transport or storage. Round-trips through
// FromJSON without loss, including the origin Spans.
func (t Tok) ToJSON() ([]byte, error) {
	return json.Marshal(jsonTok{
		Kind:     t.Kind.String(),
		Txt:      t.Txt,
		Val:      t.Val,
		Original: t.Original,
		Spans:    t.Spans,
	})
}

// FromJSON reconstructs a Tok previously serialized with ToJSON. Unknown
// kind names produce UNKNOWN rather than an error, matching the pipeline's
// own policy (spec.md §7) of never failing on malformed input.
func FromJSON(data []byte) (Tok, error) {
	var jt jsonTok
	if err := json.Unmarshal(data, &jt); err != nil {
		return Tok{}, err
	}
	k, ok := kindByName[jt.Kind]
	if !ok {
		k = UNKNOWN
	}
	return Tok{
		Kind:     k,
		Txt:      jt.Txt,
		Val:      jt.Val,
		Original: jt.Original,
		Spans:    jt.Spans,
	}, nil
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()
