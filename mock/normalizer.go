package mock

import (
	"os"
	"strings"
)

// Normalizer is a pass-thru normalizer which treats zonefiles as already being in
// canonical one-RR-per-line form. It records each call and fails any zone listed in
// Fail.
type Normalizer struct {
	Fail  map[string]error // Keyed by zone name
	Zones []string         // Zone names in call order
	Paths []string         // Paths in call order
}

func NewNormalizer() *Normalizer {
	return &Normalizer{Fail: make(map[string]error)}
}

func (t *Normalizer) Normalize(zone, path string) ([]string, error) {
	t.Zones = append(t.Zones, zone)
	t.Paths = append(t.Paths, path)
	if err, ok := t.Fail[zone]; ok {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(string(b), "\n")
	if len(s) == 0 {
		return []string{}, nil
	}

	return strings.Split(s, "\n"), nil
}
