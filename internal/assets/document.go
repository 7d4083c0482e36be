package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ttsedit/internal/log"
)

// Save file keys
const (
	keyObjectStates = "ObjectStates"
	keyNickname     = "Nickname"
	keyDescription  = "Description"
)

var (
	// ErrNoObjectStates is returned when a save has no ObjectStates array
	ErrNoObjectStates = errors.New("save has no ObjectStates")
	// ErrIndexOutOfRange is returned for object, unit or profile indices past the end
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Document is a decoded Tabletop Simulator save. Only Nickname and
// Description are interpreted; every other field is kept as raw JSON and
// written back unchanged.
type Document struct {
	fields  map[string]json.RawMessage
	objects []map[string]json.RawMessage
}

// Load decodes a save from r
func Load(r io.Reader) (*Document, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}

	raw, ok := fields[keyObjectStates]
	if !ok {
		return nil, ErrNoObjectStates
	}

	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", keyObjectStates, err)
	}

	return &Document{fields: fields, objects: objects}, nil
}

// LoadFile decodes the save at path
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening save: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded save", "file", path, "objects", doc.Len())
	return doc, nil
}

// Len returns the number of objects in ObjectStates
func (d *Document) Len() int {
	return len(d.objects)
}

// Nickname returns the object's Nickname, or "Unit <i+1>" when it has none
func (d *Document) Nickname(i int) string {
	if nickname, ok := d.stringField(i, keyNickname); ok {
		return nickname
	}
	return fmt.Sprintf("Unit %d", i+1)
}

// Description returns the object's Description, empty when missing
func (d *Document) Description(i int) string {
	description, _ := d.stringField(i, keyDescription)
	return description
}

// SetDescription replaces the object's Description
func (d *Document) SetDescription(i int, text string) error {
	if i < 0 || i >= len(d.objects) {
		return fmt.Errorf("object %d: %w", i, ErrIndexOutOfRange)
	}
	raw, err := marshalNoEscape(text)
	if err != nil {
		return err
	}
	d.objects[i][keyDescription] = raw
	return nil
}

func (d *Document) stringField(i int, key string) (string, bool) {
	if i < 0 || i >= len(d.objects) {
		return "", false
	}
	raw, ok := d.objects[i][key]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// Save writes the document as indented JSON. Keys come out sorted.
func (d *Document) Save(w io.Writer) error {
	objects, err := marshalNoEscape(d.objects)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", keyObjectStates, err)
	}

	out := make(map[string]json.RawMessage, len(d.fields))
	for key, value := range d.fields {
		out[key] = value
	}
	out[keyObjectStates] = objects

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	return nil
}

// SaveFile writes the document to path through a temporary file in the same
// directory. With backup set, an existing file is first copied to path.bak.
func (d *Document) SaveFile(path string, backup bool) error {
	if backup {
		if err := copyFile(path, path+".bak"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("backing up save: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := d.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	// CreateTemp uses 0600; keep the mode of the file being replaced
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("setting save permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing save: %w", err)
	}

	log.Info("saved save", "file", path, "backup", backup)
	return nil
}

func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
