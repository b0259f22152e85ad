package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// chapterFile is the on-disk shape of one chapter.
type chapterFile struct {
	Verses verseEntries `json:"verses"`
}

// verseEntries accepts both verse shapes found in corpora:
//
//	{"verses": [{"text": "In the beginning ..."}, ...]}
//	{"verses": ["In the beginning ...", ...]}
//
// and flattens either into the verse texts.
type verseEntries []string

func (v *verseEntries) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("verses: %w", err)
	}

	if raw == nil {
		*v = nil
		return nil
	}

	texts := make([]string, 0, len(raw))

	for i, item := range raw {
		text, err := decodeVerse(item)
		if err != nil {
			return fmt.Errorf("verses[%d]: %w", i, err)
		}

		texts = append(texts, text)
	}

	*v = texts

	return nil
}

var errVerseShape = errors.New("verse must be a string or an object with a text field")

func decodeVerse(item json.RawMessage) (string, error) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 {
		return "", errVerseShape
	}

	switch item[0] {
	case '"':
		var text string
		if err := json.Unmarshal(item, &text); err != nil {
			return "", err
		}

		return text, nil
	case '{':
		var obj struct {
			Text *string `json:"text"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return "", err
		}

		if obj.Text == nil {
			return "", nil
		}

		return *obj.Text, nil
	default:
		return "", errVerseShape
	}
}
