// Package envfile renders a collected configuration record into the
// grouped dotenv format the backend expects, and reads such files back.
package envfile

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/classreg/envsetup/internal/setup"
)

// Render serializes the record section by section: a comment header, the
// section's KEY=VALUE lines in catalog order, then a blank line. Sections
// with no collected values are omitted entirely, which is how the optional
// database block disappears when no local endpoint was chosen.
//
// Lines are written raw rather than through godotenv.Write, which sorts
// keys alphabetically and quotes values, destroying the documented layout.
func Render(rec *setup.Record) string {
	var b strings.Builder
	for _, sec := range setup.Sections() {
		present := false
		for _, f := range sec.Fields {
			if _, ok := rec.Get(f.Key); ok {
				present = true
				break
			}
		}
		if !present {
			continue
		}
		b.WriteString("# " + sec.Name + "\n")
		for _, f := range sec.Fields {
			if v, ok := rec.Get(f.Key); ok {
				b.WriteString(f.Key + "=" + v + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Write renders rec and writes it to path, replacing any previous file.
// The file holds credentials, so permissions are owner-only.
func Write(path string, rec *setup.Record) error {
	if err := os.WriteFile(path, []byte(Render(rec)), 0o600); err != nil {
		return wrap(err, "write env file")
	}
	return nil
}

// Exists reports whether path already points at a file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads an existing env file into a plain map.
func Load(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, wrap(err, "read env file")
	}
	return values, nil
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
