package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// uidNamespace scopes item uids so the launcher learns per representation kind.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Jaesung-Jung/Colors"))

// Icon points at an image shown next to an item
type Icon struct {
	Path string `json:"path"`
}

// Text holds the alternate texts used for copy and large type
type Text struct {
	Copy      string `json:"copy,omitempty"`
	LargeType string `json:"largetype,omitempty"`
}

// Item is a single selectable result entry
type Item struct {
	UID      string `json:"uid,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
	Icon     *Icon  `json:"icon,omitempty"`
	Text     *Text  `json:"text,omitempty"`
}

// NewItem builds an entry whose title and value are the representation text
// and whose subtitle is the representation label. An empty iconPath omits the icon.
func NewItem(label, text, iconPath string) Item {
	item := Item{
		UID:      ItemUID(label),
		Title:    text,
		Subtitle: label,
		Arg:      text,
		Text: &Text{
			Copy:      text,
			LargeType: text,
		},
	}
	if iconPath != "" {
		item.Icon = &Icon{Path: iconPath}
	}
	return item
}

// ItemUID returns the stable uid for a representation label
func ItemUID(label string) string {
	return uuid.NewSHA1(uidNamespace, []byte("colors:"+label)).String()
}

// ScriptFilter is the payload handed to the launcher
type ScriptFilter struct {
	Items []Item `json:"items"`
}

// NewScriptFilter creates an empty payload
func NewScriptFilter() *ScriptFilter {
	return &ScriptFilter{
		Items: make([]Item, 0),
	}
}

// AddItem appends an item to the payload
func (sf *ScriptFilter) AddItem(item Item) {
	sf.Items = append(sf.Items, item)
}

// ToJSON serializes the payload to JSON
func (sf *ScriptFilter) ToJSON() ([]byte, error) {
	return json.MarshalIndent(sf, "", "  ")
}

// ParseScriptFilter parses JSON data into a ScriptFilter
func ParseScriptFilter(data []byte) (*ScriptFilter, error) {
	var sf ScriptFilter
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse script filter JSON: %w", err)
	}
	return &sf, nil
}
