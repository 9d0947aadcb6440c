package store

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned when refusing to overwrite a file.
var ErrExists = errors.New("file already exists")

// readYAML reads path into out. YAML is a superset of JSON, so JSON files
// decode too.
func readYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// WriteYAML writes v to path, creating parent directories as needed. Unless
// overwrite is set an existing file is left alone and ErrExists returned.
func WriteYAML(path string, v any, mode os.FileMode, overwrite bool) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return writeFile(path, b, mode, overwrite)
}

// EncodeYAML writes v to w as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeFile stages b in a temp file next to path, then publishes it. With
// overwrite the temp file is renamed over path; without, it is hard-linked
// into place so an existing path is never replaced.
func writeFile(path string, b []byte, mode os.FileMode, overwrite bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	_, err = f.Write(b)
	if err == nil {
		err = f.Chmod(mode)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if overwrite {
		return os.Rename(tmp, path)
	}
	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return err
	}
	return nil
}
