package models

import (
	"bytes"
	"encoding/json"
)

// WordFrequencies is a word→count mapping that keeps the key order of the
// JSON object it came from. Chart ordering uses a stable sort, so ties
// between counts must keep the wire order instead of Go's randomized map
// iteration.
type WordCount struct {
	Word  string
	Count int
}

type WordFrequencies []WordCount

func (w WordFrequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, wc := range w {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(wc.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(wc.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON never fails: a payload that is not an object decodes to an
// empty list, and non-numeric counts decode to 0.
func (w *WordFrequencies) UnmarshalJSON(data []byte) error {
	*w = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil
		}
		*w = append(*w, WordCount{Word: key, Count: nonNegativeInt(raw)})
	}
	return nil
}

// SentimentScores is a label→score mapping with the same order-preserving,
// never-failing decode behavior as WordFrequencies.
type SentimentScore struct {
	Label string
	Value float64
}

type SentimentScores []SentimentScore

func (s SentimentScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sc.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(sc.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SentimentScores) UnmarshalJSON(data []byte) error {
	*s = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil
		}
		var val float64
		if err := json.Unmarshal(raw, &val); err != nil {
			val = 0
		}
		*s = append(*s, SentimentScore{Label: key, Value: val})
	}
	return nil
}

func (s SentimentScores) Get(label string) float64 {
	for _, sc := range s {
		if sc.Label == label {
			return sc.Value
		}
	}
	return 0
}

func nonNegativeInt(raw json.RawMessage) int {
	var val float64
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0
	}
	if val < 0 {
		return 0
	}
	return int(val)
}
