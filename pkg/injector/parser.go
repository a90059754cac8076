package injector

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a definition from raw bytes.
type Parser interface {
	Parse(ctx context.Context, data []byte) (*Definition, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// XMLParser reads the <fsm> document format.
type XMLParser struct{}

func (XMLParser) Parse(ctx context.Context, data []byte) (*Definition, error) {
	return decode(ctx, data, ErrFailedToParseXML, func(d *Definition) error {
		return xml.NewDecoder(bytes.NewReader(data)).Decode(d)
	})
}

func (XMLParser) SupportsFileExtension(ext string) bool {
	return matchExt(ext, "xml")
}

// YAMLParser reads YAML definitions.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, data []byte) (*Definition, error) {
	return decode(ctx, data, ErrFailedToParseYAML, func(d *Definition) error {
		return yaml.Unmarshal(data, d)
	})
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	return matchExt(ext, "yaml", "yml")
}

// JSONParser reads JSON definitions.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, data []byte) (*Definition, error) {
	return decode(ctx, data, ErrFailedToParseJSON, func(d *Definition) error {
		return json.Unmarshal(data, d)
	})
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return matchExt(ext, "json")
}

var parsers = []Parser{XMLParser{}, YAMLParser{}, JSONParser{}}

// NewParserForFile returns the parser for the file's extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// ParseXML decodes an XML definition.
func ParseXML(ctx context.Context, data []byte) (*Definition, error) {
	return XMLParser{}.Parse(ctx, data)
}

// ParseYAML decodes a YAML definition.
func ParseYAML(ctx context.Context, data []byte) (*Definition, error) {
	return YAMLParser{}.Parse(ctx, data)
}

// ParseJSON decodes a JSON definition.
func ParseJSON(ctx context.Context, data []byte) (*Definition, error) {
	return JSONParser{}.Parse(ctx, data)
}

// LoadFile reads and parses the definition at path. The format is chosen by
// file extension.
func LoadFile(ctx context.Context, path string) (*Definition, error) {
	return load(ctx, path, os.ReadFile)
}

// LoadFS reads and parses the definition at name in fsys.
func LoadFS(ctx context.Context, fsys fs.FS, name string) (*Definition, error) {
	return load(ctx, name, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
}

func load(ctx context.Context, path string, read func(string) ([]byte, error)) (*Definition, error) {
	p := NewParserForFile(path)
	if p == nil {
		return nil, errors.Join(ErrUnsupportedFormat, errors.New(path))
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	data, err := read(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return p.Parse(ctx, data)
}

func decode(ctx context.Context, data []byte, parseErr error, fn func(*Definition) error) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var def Definition
	if err := fn(&def); err != nil {
		return nil, errors.Join(parseErr, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func matchExt(ext string, supported ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, s := range supported {
		if strings.EqualFold(ext, s) {
			return true
		}
	}
	return false
}
