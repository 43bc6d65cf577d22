// Package signs holds the 巧連神數 course table and looks courses up in it.
package signs

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Size is the number of courses in a complete table.
const Size = 215

// NoMatch is the sign name reported for a course outside the table.
const NoMatch = "无对应卦象！"

// PlaceholderNote is shown next to readings taken from a placeholder table.
const PlaceholderNote = "内置课表为占位文本，请以 signs_file 载入正式课表"

//go:embed data/signs.yaml
var defaultData []byte

// Paraphrase is the reading attached to a sign.
type Paraphrase struct {
	Explain     string `yaml:"explain" json:"explain"`         // 描述
	Description string `yaml:"description" json:"description"` // 解释
	Avoid       string `yaml:"avoid" json:"avoid"`             // 禁忌
}

// entry is one row of the table file.
type entry struct {
	Name       string `yaml:"name"`
	Paraphrase `yaml:",inline"`
}

// Sign is the outcome of a lookup. Paraphrase is nil when the course has
// no entry.
type Sign struct {
	Course     int         `json:"course"`
	Name       string      `json:"name"`
	Paraphrase *Paraphrase `json:"paraphrase,omitempty"`

	// Placeholder is set when the paraphrase comes from a table marked as
	// stand-in text rather than the canonical readings.
	Placeholder bool `json:"placeholder,omitempty"`
}

// Found reports whether the lookup hit a table entry.
func (s Sign) Found() bool {
	return s.Paraphrase != nil
}

// Table is an immutable course table indexed by course number - 1.
type Table struct {
	entries     []entry
	placeholder bool
}

var defaultTable *Table

func init() {
	t, err := Load(bytes.NewReader(defaultData))
	if err != nil {
		panic(fmt.Sprintf("signs: embedded table: %v", err))
	}
	defaultTable = t
}

// Default returns the embedded table.
func Default() *Table {
	return defaultTable
}

// Load parses a YAML course table.
func Load(r io.Reader) (*Table, error) {
	var doc struct {
		Placeholder bool    `yaml:"placeholder"`
		Signs       []entry `yaml:"signs"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing signs table: %w", err)
	}
	if len(doc.Signs) != Size {
		return nil, fmt.Errorf("signs table has %d entries, want %d", len(doc.Signs), Size)
	}
	for i, e := range doc.Signs {
		if e.Name == "" {
			return nil, fmt.Errorf("sign %d has no name", i+1)
		}
	}
	return &Table{entries: doc.Signs, placeholder: doc.Placeholder}, nil
}

// LoadFile reads a course table from a YAML file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening signs file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Len returns the number of courses.
func (t *Table) Len() int {
	return len(t.entries)
}

// Placeholder reports whether the table file is marked as stand-in text.
func (t *Table) Placeholder() bool {
	return t.placeholder
}

// Lookup returns the sign for a course number. Courses outside 1..Len(),
// including 0, resolve to NoMatch with no paraphrase.
func (t *Table) Lookup(course int) Sign {
	if course < 1 || course > len(t.entries) {
		return Sign{Course: course, Name: NoMatch}
	}

	e := t.entries[course-1]
	p := e.Paraphrase
	return Sign{Course: course, Name: e.Name, Paraphrase: &p, Placeholder: t.placeholder}
}

// All returns every sign in course order.
func (t *Table) All() []Sign {
	result := make([]Sign, len(t.entries))
	for i := range t.entries {
		result[i] = t.Lookup(i + 1)
	}
	return result
}
