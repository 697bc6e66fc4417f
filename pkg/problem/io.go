package problem

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"gopkg.in/yaml.v3"
)

type format uint8

const (
	formatJSON format = iota
	formatJSONBzip2
	formatYAML
)

func formatOf(filename string) (format, error) {
	name := strings.ToLower(filepath.Base(filename))
	switch {
	case strings.HasSuffix(name, ".json.bz2"):
		return formatJSONBzip2, nil
	case strings.HasSuffix(name, ".json"):
		return formatJSON, nil
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return formatYAML, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrUnsupportedFormat,
			"%s: expected .json, .json.bz2, .yaml or .yml", filename)
	}
}

// ReadProblem. load a problem file, the format is chosen by extension.
func ReadProblem(filename string) (*Problem, error) {
	ft, err := formatOf(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if ft == formatJSONBzip2 {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrMalformedGraph, "%s: invalid bzip2 stream", filename)
		}
		defer bz.Close()
		r = bz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrMalformedGraph, "%s: read problem", filename)
	}
	return decode(filename, ft, data)
}

func decode(filename string, ft format, data []byte) (*Problem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyProblem, "%s: empty file", filename)
	}

	p := &Problem{}
	var err error
	if ft == formatYAML {
		err = yaml.Unmarshal(data, p)
	} else {
		err = json.Unmarshal(data, p)
	}
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrMalformedGraph, "%s: decode problem", filename)
	}

	if len(p.Intersections) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyProblem, "%s: problem has no intersections", filename)
	}
	return p, nil
}

// WriteProblem. inverse of ReadProblem.
func WriteProblem(filename string, p *Problem) error {
	ft, err := formatOf(filename)
	if err != nil {
		return err
	}

	var data []byte
	if ft == formatYAML {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.Marshal(p)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if ft != formatJSONBzip2 {
		_, err = f.Write(data)
		return err
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if _, err := bz.Write(data); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
