package localize

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// sourceMapVersion is the only revision of the format this package handles.
const sourceMapVersion = 3

// SourceMap is a version 3 source map document.
type SourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file,omitempty"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
	Names          []string  `json:"names,omitempty"`
	Mappings       string    `json:"mappings"`
}

// ParseSourceMap decodes a raw source map document.
func ParseSourceMap(data []byte) (*SourceMap, error) {
	var m SourceMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSourceMap, err)
	}
	if m.Version != sourceMapVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSourceMap, m.Version)
	}
	return &m, nil
}

// Encode renders the map back to JSON.
func (m *SourceMap) Encode() ([]byte, error) {
	if m == nil {
		return nil, ErrInvalidSourceMap
	}
	return json.Marshal(m)
}

// ToComment renders the map as an inline sourceMappingURL comment for hosts
// that append maps to the artifact text instead of emitting a sibling file.
func (m *SourceMap) ToComment() (string, error) {
	data, err := m.Encode()
	if err != nil {
		return "", err
	}
	return "//# sourceMappingURL=data:application/json;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (m *SourceMap) clone() *SourceMap {
	if m == nil {
		return nil
	}
	out := *m
	out.Sources = append([]string(nil), m.Sources...)
	out.Names = append([]string(nil), m.Names...)
	if m.SourcesContent != nil {
		out.SourcesContent = append([]*string(nil), m.SourcesContent...)
	}
	return &out
}

// mappingSegment is one decoded segment of a mappings line. fields is 1, 4,
// or 5 per the format; the source and name values are absolute after
// decoding, not the on-wire deltas.
type mappingSegment struct {
	genCol  int
	srcIdx  int
	srcLine int
	srcCol  int
	nameIdx int
	fields  int
}

func decodeMappings(mappings string) ([][]mappingSegment, error) {
	lines := strings.Split(mappings, ";")
	out := make([][]mappingSegment, len(lines))

	srcIdx, srcLine, srcCol, nameIdx := 0, 0, 0, 0

	for i, line := range lines {
		if line == "" {
			continue
		}
		genCol := 0
		for _, raw := range strings.Split(line, ",") {
			values, err := decodeBase64VLQs(raw)
			if err != nil {
				return nil, err
			}
			seg := mappingSegment{fields: len(values)}
			switch len(values) {
			case 1:
			case 4, 5:
				srcIdx += values[1]
				srcLine += values[2]
				srcCol += values[3]
				seg.srcIdx, seg.srcLine, seg.srcCol = srcIdx, srcLine, srcCol
				if len(values) == 5 {
					nameIdx += values[4]
					seg.nameIdx = nameIdx
				}
			default:
				return nil, fmt.Errorf("%w: segment has %d fields", ErrInvalidSourceMap, len(values))
			}
			genCol += values[0]
			seg.genCol = genCol
			out[i] = append(out[i], seg)
		}
	}

	return out, nil
}

func encodeMappings(lines [][]mappingSegment) string {
	srcIdx, srcLine, srcCol, nameIdx := 0, 0, 0, 0

	encoded := make([]string, len(lines))
	for i, segments := range lines {
		genCol := 0
		parts := make([]string, 0, len(segments))
		for _, seg := range segments {
			var sb strings.Builder
			sb.WriteString(encodeBase64VLQ(seg.genCol - genCol))
			genCol = seg.genCol

			if seg.fields >= 4 {
				sb.WriteString(encodeBase64VLQ(seg.srcIdx - srcIdx))
				sb.WriteString(encodeBase64VLQ(seg.srcLine - srcLine))
				sb.WriteString(encodeBase64VLQ(seg.srcCol - srcCol))
				srcIdx, srcLine, srcCol = seg.srcIdx, seg.srcLine, seg.srcCol
			}
			if seg.fields == 5 {
				sb.WriteString(encodeBase64VLQ(seg.nameIdx - nameIdx))
				nameIdx = seg.nameIdx
			}
			parts = append(parts, sb.String())
		}
		encoded[i] = strings.Join(parts, ",")
	}

	return strings.Join(encoded, ";")
}

const b64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var b64Values = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(b64Digits); i++ {
		table[b64Digits[i]] = int8(i)
	}
	return table
}()

// encodeBase64VLQ writes one signed value in base64 VLQ form: sign bit in
// the lowest bit, then 5-bit groups with a continuation bit.
func encodeBase64VLQ(value int) string {
	if value < 0 {
		value = (-value << 1) | 1
	} else {
		value = value << 1
	}

	var sb strings.Builder
	for {
		digit := value & 31
		value >>= 5
		if value > 0 {
			digit |= 32
		}
		sb.WriteByte(b64Digits[digit])
		if value == 0 {
			break
		}
	}
	return sb.String()
}

// decodeBase64VLQs decodes a run of VLQ values packed into one segment.
func decodeBase64VLQs(raw string) ([]int, error) {
	var values []int

	value, shift := 0, 0
	for i := 0; i < len(raw); i++ {
		digit := b64Values[raw[i]]
		if digit < 0 {
			return nil, fmt.Errorf("%w: bad VLQ digit %q", ErrInvalidSourceMap, raw[i])
		}
		value |= int(digit&31) << shift
		if digit&32 != 0 {
			shift += 5
			continue
		}

		if value&1 != 0 {
			value = -(value >> 1)
		} else {
			value >>= 1
		}
		values = append(values, value)
		value, shift = 0, 0
	}

	if shift != 0 {
		return nil, fmt.Errorf("%w: truncated VLQ segment", ErrInvalidSourceMap)
	}
	return values, nil
}
