package chengyu

import (
	"encoding/json"
	"strings"
)

// QueryForm is raw query input as a form, a command line or an HTTP client
// supplies it. Positional fields hold up to four entries (positions 1–4);
// list fields are comma separated.
type QueryForm struct {
	Chars    []string    `json:"chars,omitempty" toml:"chars"`
	Initials []string    `json:"initials,omitempty" toml:"initials"`
	Finals   []string    `json:"finals,omitempty" toml:"finals"`
	Tones    []ToneInput `json:"tones,omitempty" toml:"tones"`

	ExcludeInitials string    `json:"exclude_initials,omitempty" toml:"exclude_initials"`
	ExcludeFinals   string    `json:"exclude_finals,omitempty" toml:"exclude_finals"`
	ExcludeTones    ToneInput `json:"exclude_tones,omitempty" toml:"exclude_tones"`

	IncludeInitials string    `json:"include_initials,omitempty" toml:"include_initials"`
	IncludeFinals   string    `json:"include_finals,omitempty" toml:"include_finals"`
	IncludeTones    ToneInput `json:"include_tones,omitempty" toml:"include_tones"`
	IncludeChars    string    `json:"include_chars,omitempty" toml:"include_chars"`
}

// ToneInput is user input for a tone or a comma separated list of tones.
// In JSON it may be given as a string, a number or an array of these; any
// other JSON value is taken as absent.
type ToneInput string

// UnmarshalJSON accepts "4", 4, "3,4" and [3, "4"]. It never fails for
// well-formed JSON.
func (t *ToneInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = ToneInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = ToneInput(n.String())
		return nil
	}
	var list []ToneInput
	if err := json.Unmarshal(data, &list); err == nil {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = string(item)
		}
		*t = ToneInput(strings.Join(parts, ","))
		return nil
	}
	*t = ""
	return nil
}

// Query converts the form into a query. Fields which do not parse are
// treated as absent: a tone other than 1–4 never constrains anything, and
// entries beyond the fourth position are ignored.
func (f *QueryForm) Query() *Query {
	q := &Query{}
	for i := range IdiomLength {
		q.Chars[i] = field(f.Chars, i)
		q.Initials[i] = field(f.Initials, i)
		q.Finals[i] = field(f.Finals, i)
		if t, ok := ParseTone(field(f.Tones, i)); ok {
			q.Tones[i] = t
		}
	}
	q.ExcludeInitials = splitList(f.ExcludeInitials)
	q.ExcludeFinals = splitList(f.ExcludeFinals)
	q.ExcludeTones = splitTones(string(f.ExcludeTones))
	q.IncludeInitials = splitList(f.IncludeInitials)
	q.IncludeFinals = splitList(f.IncludeFinals)
	q.IncludeTones = splitTones(string(f.IncludeTones))
	q.IncludeChars = splitList(f.IncludeChars)
	return q
}

func field[S ~string](values []S, i int) string {
	if i >= len(values) {
		return ""
	}
	return strings.TrimSpace(string(values[i]))
}

// splitList splits a comma separated list, dropping empty entries.
func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func splitTones(s string) []Tone {
	var tones []Tone
	for _, item := range strings.Split(s, ",") {
		if t, ok := ParseTone(item); ok {
			tones = append(tones, t)
		}
	}
	return tones
}
