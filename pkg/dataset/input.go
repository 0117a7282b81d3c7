package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type SequenceFile struct {
	Datasets []Dataset
}

// Reads named sequences from a JSON or YAML file (chosen by extension), shaped as:
//
//	{"datasets": [{"name": "cube", "sequence": [8, 2, 2, 2]}]}
//
// A file holding a bare list of integers is read as a single dataset named after the file.
func InputFromFile(file string) ([]Dataset, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read sequence file: %w", err)
	}

	raw, err := DecodeDocument(file, content)
	if err != nil {
		return nil, fmt.Errorf("cannot parse sequence file %v: %w", file, err)
	}

	if list, ok := raw.([]any); ok {
		var sequence []uint64
		if err := Decode(list, &sequence); err != nil {
			return nil, fmt.Errorf("cannot decode sequence file %v: %w", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		return []Dataset{{Name: name, Sequence: sequence}}, nil
	}

	var input SequenceFile
	if err := Decode(raw, &input); err != nil {
		return nil, fmt.Errorf("cannot decode sequence file %v: %w", file, err)
	}
	for i, dataset := range input.Datasets {
		if dataset.Name == "" {
			return nil, fmt.Errorf("dataset %v in %v has no name", i, file)
		}
	}
	if err := CheckUniqueNames(input.Datasets); err != nil {
		return nil, fmt.Errorf("invalid sequence file %v: %w", file, err)
	}
	return input.Datasets, nil
}

// Unmarshals content into generic maps and slices. Files ending in .json are read as JSON (keeping integers exact),
// anything else as YAML.
func DecodeDocument(file string, content []byte) (any, error) {
	var raw any
	if strings.EqualFold(filepath.Ext(file), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Decodes a generic document into output. JSON numbers are parsed as unsigned integers so values above 2^63 survive.
// Fields absent from input keep their current value.
func Decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonNumberToUint,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		ZeroFields:       true, // Decoded slices replace existing ones instead of being merged into them
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func jsonNumberToUint(from reflect.Type, to reflect.Type, data any) (any, error) {
	number, ok := data.(json.Number)
	if !ok {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseUint(number.String(), 10, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(number.String(), 10, 64)
	}
	return data, nil
}
