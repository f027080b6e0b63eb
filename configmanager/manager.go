// Package configmanager loads and saves the mod settings file.
//
// The file lives at <directory>/<identifier>.json and holds a flat JSON
// object of lower_snake_case keys mapped to integers. Init never fails: any
// problem is logged and the affected settings keep their defaults.
package configmanager

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"spkconfig/apperrors"
	"spkconfig/configvalues"
)

// Manager ties a set of mod settings to the config file they are read from
// and written to.
type Manager struct {
	values *configvalues.Values
	path   string
}

// New returns a Manager that reads into and writes from values.
func New(values *configvalues.Values) *Manager {
	return &Manager{values: values}
}

// Values returns the settings owned by the manager.
func (m *Manager) Values() *configvalues.Values {
	return m.values
}

// Path returns the resolved config file path, empty before Init.
func (m *Manager) Path() string {
	return m.path
}

// Init resets the settings to their defaults, then creates the config file if
// it is missing or applies its contents if it exists.
func (m *Manager) Init(identifier, directory string) {
	m.values.Reset()

	log.WithField("path", directory).Info("Config path.")
	if err := checkWritable(directory); err != nil {
		log.WithFields(log.Fields{"path": directory, "error": err}).Warn("Config directory does not appear to be writable.")
	}

	m.path = filepath.Join(directory, identifier+".json")

	_, err := os.Stat(m.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.WithField("file", m.path).Info("Could not find config, generating new default config.")
		if err := m.Save(); err != nil {
			log.WithField("error", err).Error("Could not save config file.")
		}
	default:
		if err != nil {
			log.WithFields(log.Fields{"file": m.path, "error": err}).Warn("Failed to stat config file, attempting to read it anyway.")
		}
		if err := m.Load(); err != nil {
			log.WithField("error", err).Error("Could not fully load config file.")
		}
	}

	log.WithField("file", m.path).Info("Config initialized.")
}

// Load applies the values found in the config file. A file that cannot be read
// or parsed leaves every setting untouched. A key whose value is not an integer
// keeps its current value while the remaining keys are still applied; the
// per-key failures are returned joined together.
func (m *Manager) Load() error {
	if m.path == "" {
		return apperrors.ErrNotInitialized
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return &apperrors.FileSystemError{Path: m.path, Msg: "failed to read config file", Err: err}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("failed to parse config file %s: %w", m.path, apperrors.ErrNotObject)
		}
		return fmt.Errorf("failed to parse config file %s: %w", m.path, err)
	}
	if obj == nil {
		return fmt.Errorf("failed to parse config file %s: %w", m.path, apperrors.ErrNotObject)
	}

	var errs []error
	for _, key := range configvalues.Keys() {
		raw, ok := obj[key]
		if !ok {
			log.WithField("key", key).Info("Could not find key in config file, keeping default.")
			continue
		}
		value, err := parseInt(raw)
		if err != nil {
			verr := &apperrors.ValueError{Key: key, Raw: string(raw), Err: err}
			log.WithField("error", verr).Warn("Ignoring config value, keeping default.")
			errs = append(errs, verr)
			continue
		}
		if err := m.values.Set(key, value); err != nil {
			errs = append(errs, err)
		}
	}

	for key := range obj {
		if _, known := configvalues.Default(key); !known {
			log.WithField("key", key).Debug("Ignoring unknown key in config file.")
		}
	}

	return errors.Join(errs...)
}

// Save writes the current settings to the config file, replacing its contents.
// Keys are written in sorted order with two-space indentation.
func (m *Manager) Save() (err error) {
	if m.path == "" {
		return apperrors.ErrNotInitialized
	}

	values := m.values.Map()
	for _, key := range configvalues.Keys() {
		log.WithFields(log.Fields{"key": key, "value": values[key]}).Info("Adding key.")
	}

	file, err := os.Create(m.path)
	if err != nil {
		return &apperrors.FileSystemError{Path: m.path, Msg: "failed to create config file", Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &apperrors.FileSystemError{Path: m.path, Msg: "failed to close config file", Err: cerr}
		}
	}()

	// encoding/json writes map keys in sorted order.
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(values); err != nil {
		return &apperrors.FileSystemError{Path: m.path, Msg: "failed to write config file", Err: err}
	}

	return nil
}

// parseInt accepts JSON integers, integral JSON numbers such as 7.0, and
// strings holding a decimal integer. The result must fit in 32 bits.
func parseInt(raw json.RawMessage) (int, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return 0, errors.New("value is null")
	}

	var text string
	if strings.HasPrefix(trimmed, `"`) {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, err
		}
		text = n.String()
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if !isIntegralDecimal(text) {
			return 0, err
		}
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || math.IsInf(f, 0) {
			return 0, err
		}
		if f < math.MinInt32 || f > math.MaxInt32 {
			return 0, strconv.ErrRange
		}
		i = int64(f)
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, strconv.ErrRange
	}

	return int(i), nil
}

// isIntegralDecimal reports whether text is a decimal number, optionally with
// a fraction and exponent, whose exact value is a whole number. It works on
// the digits rather than a float so that 7.0000000000000001 and 1e-400 are
// not rounded into integers.
func isIntegralDecimal(text string) bool {
	s := strings.TrimLeft(text, "+-")
	if len(text)-len(s) > 1 {
		return false
	}

	exp := 0
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		e, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return false
		}
		exp = e
		s = s[:idx]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return false
	}
	digits := intPart + fracPart
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}

	trimmed := strings.TrimRight(digits, "0")
	if strings.TrimLeft(trimmed, "0") == "" {
		return true
	}
	// Each stripped trailing zero raises the exponent of the last significant digit.
	return exp-len(fracPart)+(len(digits)-len(trimmed)) >= 0
}
